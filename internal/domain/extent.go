package domain

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Bounds is the south-west / north-east corner pair of a set of positions.
type Bounds struct {
	SouthWest Position `json:"southWest"`
	NorthEast Position `json:"northEast"`
}

// Extent summarises the sites that can be placed on a map.
type Extent struct {
	ValidCount int
	Center     *Position
	Bounds     *Bounds
}

// ComputeExtent returns the centroid and bounding box of all sites with a
// valid position. Sites without coordinates are not counted.
func ComputeExtent(sites []Site) Extent {
	flat := make([]float64, 0, 2*len(sites))
	for _, s := range sites {
		p, ok := s.Position()
		if !ok {
			continue
		}
		flat = append(flat, p.Lon, p.Lat)
	}

	ext := Extent{ValidCount: len(flat) / 2}
	if ext.ValidCount == 0 {
		return ext
	}

	mp := geom.NewMultiPointFlat(geom.XY, flat)
	if c, err := xy.Centroid(mp); err == nil {
		ext.Center = &Position{Lat: c[1], Lon: c[0]}
	}

	b := mp.Bounds()
	ext.Bounds = &Bounds{
		SouthWest: Position{Lat: b.Min(1), Lon: b.Min(0)},
		NorthEast: Position{Lat: b.Max(1), Lon: b.Max(0)},
	}
	return ext
}
