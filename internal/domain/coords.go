package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Position is a WGS-84 latitude/longitude pair in decimal degrees.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether p is a finite WGS-84 coordinate other than (0, 0).
func (p Position) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return false
	}
	return p.Lat != 0 || p.Lon != 0
}

// ParseCoordinate coerces a numeric string to float64. Surrounding
// whitespace and a single decimal comma ("63,4305") are tolerated.
// Empty, non-numeric and non-finite values report false.
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FromDecimal converts decimal-degree strings, passing valid input through unchanged.
func FromDecimal(lat, lon string) (Position, bool) {
	la, ok := ParseCoordinate(lat)
	if !ok || la == 0 {
		return Position{}, false
	}
	lo, ok := ParseCoordinate(lon)
	if !ok || lo == 0 {
		return Position{}, false
	}
	p := Position{Lat: la, Lon: lo}
	return p, p.Valid()
}

// OSGB36 national grid projection (EPSG:27700) on the Airy 1830 ellipsoid.
const (
	airyA = 6377563.396
	airyB = 6356256.909

	bngF0   = 0.9996012717
	bngLat0 = 49.0 * math.Pi / 180
	bngLon0 = -2.0 * math.Pi / 180
	bngE0   = 400000.0
	bngN0   = -100000.0

	bngMaxEasting  = 700000.0
	bngMaxNorthing = 1300000.0

	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
)

// OSGB36 -> WGS-84 Helmert parameters (position vector convention):
// translations in metres, rotations in arcseconds, scale in ppm.
var osgb36ToWGS84 = helmert{
	tx: 446.448, ty: -125.157, tz: 542.060,
	rx: 0.1502, ry: 0.2470, rz: 0.8421,
	s: -20.4894,
}

type helmert struct {
	tx, ty, tz float64
	rx, ry, rz float64
	s          float64
}

// FromBritishNationalGrid converts an OSGB36 easting/northing to WGS-84.
func FromBritishNationalGrid(easting, northing float64) (Position, bool) {
	if math.IsNaN(easting) || math.IsNaN(northing) {
		return Position{}, false
	}
	if easting <= 0 || easting > bngMaxEasting || northing <= 0 || northing > bngMaxNorthing {
		return Position{}, false
	}

	lat, lon := inverseTransverseMercator(easting, northing)
	x, y, z := geodeticToCartesian(lat, lon, airyA, airyB)
	x, y, z = osgb36ToWGS84.apply(x, y, z)
	wgsB := wgs84A * (1 - wgs84F)
	lat, lon = cartesianToGeodetic(x, y, z, wgs84A, wgsB)

	p := Position{Lat: lat * 180 / math.Pi, Lon: lon * 180 / math.Pi}
	return p, p.Valid()
}

// inverseTransverseMercator returns OSGB36 latitude and longitude in radians.
func inverseTransverseMercator(e, n float64) (float64, float64) {
	a, b := airyA, airyB
	e2 := 1 - (b*b)/(a*a)
	nn := (a - b) / (a + b)

	phi := bngLat0
	m := 0.0
	for {
		phi = (n-bngN0-m)/(a*bngF0) + phi
		m = meridionalArc(phi, b, nn)
		if math.Abs(n-bngN0-m) < 0.00001 {
			break
		}
	}

	sinPhi := math.Sin(phi)
	nu := a * bngF0 / math.Sqrt(1-e2*sinPhi*sinPhi)
	rho := a * bngF0 * (1 - e2) / math.Pow(1-e2*sinPhi*sinPhi, 1.5)
	eta2 := nu/rho - 1

	tanPhi := math.Tan(phi)
	tan2 := tanPhi * tanPhi
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2
	secPhi := 1 / math.Cos(phi)
	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanPhi / (2 * rho * nu)
	viii := tanPhi / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanPhi / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)
	x := secPhi / nu
	xi := secPhi / (6 * nu3) * (nu/rho + 2*tan2)
	xii := secPhi / (120 * nu5) * (5 + 28*tan2 + 24*tan4)
	xiia := secPhi / (5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	de := e - bngE0
	de2 := de * de
	de3 := de2 * de
	de4 := de3 * de
	de5 := de4 * de
	de6 := de5 * de
	de7 := de6 * de

	lat := phi - vii*de2 + viii*de4 - ix*de6
	lon := bngLon0 + x*de - xi*de3 + xii*de5 - xiia*de7
	return lat, lon
}

func meridionalArc(phi, b, n float64) float64 {
	n2 := n * n
	n3 := n2 * n
	dPhi := phi - bngLat0
	sPhi := phi + bngLat0

	ma := (1 + n + 5.0/4*n2 + 5.0/4*n3) * dPhi
	mb := (3*n + 3*n2 + 21.0/8*n3) * math.Sin(dPhi) * math.Cos(sPhi)
	mc := (15.0/8*n2 + 15.0/8*n3) * math.Sin(2*dPhi) * math.Cos(2*sPhi)
	md := 35.0 / 24 * n3 * math.Sin(3*dPhi) * math.Cos(3*sPhi)
	return b * bngF0 * (ma - mb + mc - md)
}

func geodeticToCartesian(lat, lon, a, b float64) (float64, float64, float64) {
	e2 := 1 - (b*b)/(a*a)
	sinLat := math.Sin(lat)
	nu := a / math.Sqrt(1-e2*sinLat*sinLat)
	x := nu * math.Cos(lat) * math.Cos(lon)
	y := nu * math.Cos(lat) * math.Sin(lon)
	z := (1 - e2) * nu * sinLat
	return x, y, z
}

func cartesianToGeodetic(x, y, z, a, b float64) (float64, float64) {
	e2 := 1 - (b*b)/(a*a)
	p := math.Hypot(x, y)
	lat := math.Atan2(z, p*(1-e2))
	for range 10 {
		sinLat := math.Sin(lat)
		nu := a / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*nu*sinLat, p)
		if math.Abs(next-lat) < 1e-12 {
			lat = next
			break
		}
		lat = next
	}
	return lat, math.Atan2(y, x)
}

func (h helmert) apply(x, y, z float64) (float64, float64, float64) {
	const arcsec = math.Pi / (180 * 3600)
	m := 1 + h.s*1e-6
	rx, ry, rz := h.rx*arcsec, h.ry*arcsec, h.rz*arcsec
	x2 := h.tx + m*(x-rz*y+ry*z)
	y2 := h.ty + m*(rz*x+y-rx*z)
	z2 := h.tz + m*(-ry*x+rx*y+z)
	return x2, y2, z2
}

const webMercatorRadius = 6378137.0

// FromWebMercator inverts spherical Web Mercator (EPSG:3857) metres to degrees.
func FromWebMercator(x, y float64) (Position, bool) {
	if x == 0 || y == 0 || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Position{}, false
	}
	lon := x / webMercatorRadius * 180 / math.Pi
	lat := (2*math.Atan(math.Exp(y/webMercatorRadius)) - math.Pi/2) * 180 / math.Pi
	p := Position{Lat: lat, Lon: lon}
	return p, p.Valid()
}

var (
	dmsNumberRe  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	dmsAllowedRe = regexp.MustCompile(`^[\d\s.,:°º˚'′’‘"″”“\-+]+$`)
)

// ParseDMS parses a degrees-minutes-seconds string such as `47° 33' 12" N`
// into signed decimal degrees. The hemisphere letter may lead or trail; S and
// W (or a leading minus) negate. A plain decimal is accepted as degrees.
func ParseDMS(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	var hemisphere byte
	switch {
	case strings.ContainsRune("NSEWnsew", rune(s[len(s)-1])):
		hemisphere = s[len(s)-1]
		s = strings.TrimSpace(s[:len(s)-1])
	case strings.ContainsRune("NSEWnsew", rune(s[0])):
		hemisphere = s[0]
		s = strings.TrimSpace(s[1:])
	}
	if s == "" || !dmsAllowedRe.MatchString(s) {
		return 0, false
	}

	negative := strings.HasPrefix(s, "-")
	switch hemisphere {
	case 'S', 's', 'W', 'w':
		negative = true
	}

	nums := dmsNumberRe.FindAllString(s, -1)
	if len(nums) == 0 || len(nums) > 3 {
		return 0, false
	}

	parts := make([]float64, 3)
	for i, n := range nums {
		v, err := strconv.ParseFloat(strings.Replace(n, ",", ".", 1), 64)
		if err != nil {
			return 0, false
		}
		parts[i] = v
	}
	if parts[1] >= 60 || parts[2] >= 60 {
		return 0, false
	}

	deg := parts[0] + parts[1]/60 + parts[2]/3600
	if negative {
		deg = -deg
	}
	return deg, true
}

// FromDMS converts a DMS latitude/longitude string pair to a position.
func FromDMS(lat, lon string) (Position, bool) {
	la, ok := ParseDMS(lat)
	if !ok || la == 0 {
		return Position{}, false
	}
	lo, ok := ParseDMS(lon)
	if !ok || lo == 0 {
		return Position{}, false
	}
	p := Position{Lat: la, Lon: lo}
	return p, p.Valid()
}
