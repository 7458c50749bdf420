// Package region maps each regional CSV schema onto the canonical site model
// and resolves request region keys to the datasets that back them.
package region

import (
	"sort"
	"strings"

	"github.com/couchcryptid/aquaculture-sites-service/internal/domain"
)

// Adapter turns one raw CSV row of a dataset into a canonical site.
type Adapter interface {
	Key() string
	Normalize(row domain.RawRow) domain.Site
}

// Box is a latitude/longitude sanity envelope for a region.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p domain.Position) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Region is a routable key backed by one or more datasets.
type Region struct {
	Key      string
	Name     string
	Datasets []string
	Bounds   Box
}

// Composite reports whether the region aggregates several datasets.
func (r Region) Composite() bool {
	return len(r.Datasets) > 1
}

// DefaultKey is used when a request names no region or an unknown one.
const DefaultKey = "uk"

const (
	KeyUK              = "uk"
	KeyIceland         = "iceland"
	KeyNorway          = "norway"
	KeyCanada          = "canada"
	KeyBritishColumbia = "britishcolumbia"
	KeyNewBrunswick    = "newbrunswick"
	KeyNewfoundland    = "newfoundland"
	KeyNovaScotia      = "novascotia"
	KeyQuebec          = "quebec"
)

var canadaBox = Box{MinLat: 41, MaxLat: 84, MinLon: -141, MaxLon: -52}

var regions = map[string]Region{
	KeyUK:      {Key: KeyUK, Name: "United Kingdom", Datasets: []string{KeyUK}, Bounds: Box{MinLat: 49, MaxLat: 61, MinLon: -8.7, MaxLon: 2}},
	KeyIceland: {Key: KeyIceland, Name: "Iceland", Datasets: []string{KeyIceland}, Bounds: Box{MinLat: 63, MaxLat: 67.5, MinLon: -25, MaxLon: -13}},
	KeyNorway:  {Key: KeyNorway, Name: "Norway", Datasets: []string{KeyNorway}, Bounds: Box{MinLat: 57, MaxLat: 72, MinLon: 4, MaxLon: 32}},
	KeyCanada: {
		Key:  KeyCanada,
		Name: "Canada",
		Datasets: []string{
			KeyBritishColumbia, KeyNewBrunswick, KeyNewfoundland, KeyNovaScotia, KeyQuebec,
		},
		Bounds: canadaBox,
	},
	KeyBritishColumbia: {Key: KeyBritishColumbia, Name: "British Columbia", Datasets: []string{KeyBritishColumbia}, Bounds: Box{MinLat: 48, MaxLat: 60, MinLon: -139.1, MaxLon: -114}},
	KeyNewBrunswick:    {Key: KeyNewBrunswick, Name: "New Brunswick", Datasets: []string{KeyNewBrunswick}, Bounds: Box{MinLat: 44.5, MaxLat: 48.1, MinLon: -69.1, MaxLon: -63.7}},
	KeyNewfoundland:    {Key: KeyNewfoundland, Name: "Newfoundland and Labrador", Datasets: []string{KeyNewfoundland}, Bounds: Box{MinLat: 46.5, MaxLat: 60.5, MinLon: -67.9, MaxLon: -52.5}},
	KeyNovaScotia:      {Key: KeyNovaScotia, Name: "Nova Scotia", Datasets: []string{KeyNovaScotia}, Bounds: Box{MinLat: 43.3, MaxLat: 47.1, MinLon: -66.4, MaxLon: -59.6}},
	KeyQuebec:          {Key: KeyQuebec, Name: "Quebec", Datasets: []string{KeyQuebec}, Bounds: Box{MinLat: 44.9, MaxLat: 62.6, MinLon: -79.8, MaxLon: -57.1}},
}

var aliases = map[string]string{
	"scotland":                KeyUK,
	"gb":                      KeyUK,
	"unitedkingdom":           KeyUK,
	"is":                      KeyIceland,
	"no":                      KeyNorway,
	"norwegian":               KeyNorway,
	"ca":                      KeyCanada,
	"bc":                      KeyBritishColumbia,
	"nb":                      KeyNewBrunswick,
	"nl":                      KeyNewfoundland,
	"newfoundlandandlabrador": KeyNewfoundland,
	"ns":                      KeyNovaScotia,
	"qc":                      KeyQuebec,
	"québec":                  KeyQuebec,
}

// Resolve maps a request key to a region. Matching ignores case, spaces,
// hyphens and underscores. Unknown or empty keys resolve to the UK region
// and report false.
func Resolve(key string) (Region, bool) {
	k := canonicalKey(key)
	if alias, ok := aliases[k]; ok {
		k = alias
	}
	if r, ok := regions[k]; ok {
		return r, true
	}
	return regions[DefaultKey], false
}

// Keys returns every routable region key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(regions))
	for k := range regions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the adapter for a dataset key.
func Lookup(dataset string) (Adapter, bool) {
	a, ok := adapters[dataset]
	return a, ok
}

// DatasetKeys returns every dataset key in sorted order.
func DatasetKeys() []string {
	keys := make([]string, 0, len(adapters))
	for k := range adapters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func canonicalKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
}

var adapters = map[string]*schema{
	KeyUK:              ukSchema,
	KeyIceland:         icelandSchema,
	KeyNorway:          norwaySchema,
	KeyBritishColumbia: britishColumbiaSchema,
	KeyNewBrunswick:    newBrunswickSchema,
	KeyNewfoundland:    newfoundlandSchema,
	KeyNovaScotia:      novaScotiaSchema,
	KeyQuebec:          quebecSchema,
}
