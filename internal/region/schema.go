package region

import (
	"strings"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

// columns lists candidate header names for one attribute, most specific first.
type columns []string

type detailColumn struct {
	label string
	names columns
}

// hoverLine resolves one tooltip line from a normalized site.
type hoverLine struct {
	label string
	value func(domain.Site) string
}

// schema is a data-driven Adapter for one regional CSV layout.
type schema struct {
	key string

	id        columns
	name      columns
	company   columns
	species   columns
	siteType  columns
	waterType columns
	region    columns

	// fixedRegion overrides the region column, e.g. a province name.
	fixedRegion string

	details []detailColumn
	coords  coordinate
	hover   []hoverLine
}

func (s *schema) Key() string { return s.key }

// Normalize maps a raw row onto the canonical site. It never fails; a row with
// an unusable coordinate yields a site without latitude/longitude.
func (s *schema) Normalize(row domain.RawRow) domain.Site {
	site := domain.Site{
		ID:        row.Get(s.id...),
		Name:      row.Get(s.name...),
		Company:   row.Get(s.company...),
		Species:   row.Get(s.species...),
		SiteType:  row.Get(s.siteType...),
		WaterType: domain.NormalizeWaterType(row.Get(s.waterType...)),
		Region:    row.Get(s.region...),
	}
	if s.fixedRegion != "" {
		site.Region = s.fixedRegion
	}
	site.SpeciesList = domain.NormalizeSpeciesList(site.Species)

	for _, d := range s.details {
		if v := row.Get(d.names...); v != "" {
			site.Details = append(site.Details, domain.Detail{Label: d.label, Value: v})
		}
	}

	site.SetPosition(s.coords.read(row))

	title := site.Name
	if title == "" {
		title = site.ID
	}
	fields := make([]domain.HoverField, 0, len(s.hover))
	for _, h := range s.hover {
		fields = append(fields, domain.HoverField{Label: h.label, Value: h.value(site)})
	}
	site.HoverText = domain.BuildHoverText(title, fields)

	return site
}

// Hover value accessors.

func siteID(s domain.Site) string    { return s.ID }
func company(s domain.Site) string   { return s.Company }
func siteType(s domain.Site) string  { return s.SiteType }
func waterType(s domain.Site) string { return s.WaterType }
func regionName(s domain.Site) string {
	return s.Region
}

// speciesLine prefers the normalized species list over the raw cell.
func speciesLine(s domain.Site) string {
	if len(s.SpeciesList) > 0 {
		return strings.Join(s.SpeciesList, ", ")
	}
	return s.Species
}

func detail(label string) func(domain.Site) string {
	return func(s domain.Site) string { return s.Detail(label) }
}

// Encoding names the native coordinate representation of a dataset.
type Encoding string

const (
	EncodingGrid     Encoding = "bng"
	EncodingDecimal  Encoding = "decimal"
	EncodingMercator Encoding = "webmercator"
	EncodingDMS      Encoding = "dms"
)

// coordinate reads a dataset's native coordinate pair. For grid and mercator
// data first/second are easting/northing (x/y); otherwise latitude/longitude.
type coordinate struct {
	encoding      Encoding
	first, second columns
}

func (c coordinate) read(row domain.RawRow) (domain.Position, bool) {
	a, b := row.Get(c.first...), row.Get(c.second...)
	switch c.encoding {
	case EncodingDecimal:
		return domain.FromDecimal(a, b)
	case EncodingDMS:
		return domain.FromDMS(a, b)
	}

	x, ok := domain.ParseCoordinate(a)
	if !ok {
		return domain.Position{}, false
	}
	y, ok := domain.ParseCoordinate(b)
	if !ok {
		return domain.Position{}, false
	}
	if c.encoding == EncodingGrid {
		return domain.FromBritishNationalGrid(x, y)
	}
	return domain.FromWebMercator(x, y)
}

// Layout describes the primary header names of a dataset, for fixture
// generation and validation reports. Empty names mean the dataset has no
// such column.
type Layout struct {
	Dataset string
	Header  []string

	ID        string
	Name      string
	Company   string
	Species   string
	SiteType  string
	WaterType string
	Region    string
	Details   []string

	Encoding    Encoding
	CoordFirst  string
	CoordSecond string
}

// LayoutOf returns the layout of a dataset.
func LayoutOf(dataset string) (Layout, bool) {
	s, ok := adapters[dataset]
	if !ok {
		return Layout{}, false
	}
	return s.layout(), true
}

func (s *schema) layout() Layout {
	l := Layout{
		Dataset:     s.key,
		ID:          primary(s.id),
		Name:        primary(s.name),
		Company:     primary(s.company),
		Species:     primary(s.species),
		SiteType:    primary(s.siteType),
		WaterType:   primary(s.waterType),
		Region:      primary(s.region),
		Encoding:    s.coords.encoding,
		CoordFirst:  primary(s.coords.first),
		CoordSecond: primary(s.coords.second),
	}
	for _, d := range s.details {
		l.Details = append(l.Details, primary(d.names))
	}

	seen := map[string]bool{}
	cols := append([]string{l.ID, l.Name, l.Company, l.Species, l.SiteType, l.WaterType, l.Region}, l.Details...)
	cols = append(cols, l.CoordFirst, l.CoordSecond)
	for _, c := range cols {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		l.Header = append(l.Header, c)
	}
	return l
}

func primary(cols columns) string {
	if len(cols) == 0 {
		return ""
	}
	return cols[0]
}
