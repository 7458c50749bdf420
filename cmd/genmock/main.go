// Command genmock writes synthetic site CSVs for every regional dataset in
// its native layout and coordinate encoding, so the service and the validate
// command can run without the published open-data files.
//
// Usage:
//
//	go run ./cmd/genmock -out data -rows 25 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/aquaculture-sites-service/internal/config"
	"github.com/couchcryptid/aquaculture-sites-service/internal/region"
)

// Every blankEvery-th row is written without coordinates.
const blankEvery = 10

const webMercatorRadius = 6378137.0

// pool holds native-language cell values for one dataset.
type pool struct {
	companies  []string
	species    []string
	siteTypes  []string
	waterTypes []string
	regions    []string
	places     []string
}

var pools = map[string]pool{
	region.KeyUK: {
		companies:  []string{"Mowi Scotland", "Scottish Sea Farms", "Bakkafrost Scotland", "Cooke Aquaculture Scotland, Ltd", "Loch Fyne Oysters"},
		species:    []string{"4: Atlantic salmon", "Rainbow trout", "Salmo salar", "Mytilus edulis", "Pacific oyster", "Mussel; Oyster"},
		siteTypes:  []string{"Finfish", "Shellfish"},
		waterTypes: []string{"Seawater", "Freshwater", "Marine"},
		regions:    []string{"Highland", "Argyll and Bute", "Shetland Islands", "Orkney Islands", "Western Isles"},
		places:     []string{"Loch Ailort", "Loch Duart", "Sound of Mull", "Vaila", "Loch Fyne", "Bay of Cleat"},
	},
	region.KeyIceland: {
		companies: []string{"Arctic Fish", "Arnarlax", "Laxar", "Kaldvík", "Samherji fiskeldi"},
		species:   []string{"Atlantic salmon", "Lax", "Bleikja", "Regnbogasilungur"},
		siteTypes: []string{"Sea cage", "Land based"},
		regions:   []string{"Westfjords", "Eastfjords", "Reykjanes"},
		places:    []string{"Dýrafjörður", "Reyðarfjörður", "Patreksfjörður", "Berufjörður", "Fáskrúðsfjörður"},
	},
	region.KeyNorway: {
		companies:  []string{"Mowi ASA", "Lerøy Seafood", "SalMar Farming", "Grieg Seafood", "Cermaq Norway"},
		species:    []string{"Laks", "Regnbueørret", "Laks, Regnbueørret", "Røye", "Blåskjell"},
		siteTypes:  []string{"SJØ", "LAND"},
		waterTypes: []string{"SALTVANN", "FERSKVANN", "BRAKKVANN"},
		regions:    []string{"Vestland", "Møre og Romsdal", "Trøndelag", "Nordland", "Troms"},
		places:     []string{"Hjartholm", "Kjeholmen", "Langøgrunn", "Flatholmen", "Skorpa"},
	},
	region.KeyBritishColumbia: {
		companies:  []string{"Cermaq Canada", "Grieg Seafood BC", "Mowi Canada West", "Taylor Shellfish"},
		species:    []string{"Atlantic Salmon", "Pacific oysters", "Manila clam", "Sablefish"},
		siteTypes:  []string{"Marine Finfish", "Shellfish"},
		waterTypes: []string{"Marine"},
		places:     []string{"Clio Channel", "Baynes Sound", "Esperanza Inlet", "Nootka Sound"},
	},
	region.KeyNewBrunswick: {
		companies:  []string{"Cooke Aquaculture", "Northern Harvest Sea Farms", "Maritime Oysters"},
		species:    []string{"Atlantic salmon", "American oyster", "Blue mussel"},
		siteTypes:  []string{"Finfish", "Shellfish"},
		waterTypes: []string{"Marine", "Estuarine"},
		places:     []string{"Deer Island", "Campobello", "Grand Manan", "Shippagan"},
	},
	region.KeyNewfoundland: {
		companies:  []string{"Cold Ocean Salmon", "Grieg NL", "Badger Bay Mussel Farms"},
		species:    []string{"Atlantic salmon", "Steelhead trout", "Blue mussel"},
		siteTypes:  []string{"Finfish", "Shellfish"},
		waterTypes: []string{"Marine"},
		places:     []string{"Hermitage Bay", "Fortune Bay", "Notre Dame Bay", "Placentia Bay"},
	},
	region.KeyNovaScotia: {
		companies:  []string{"Kelly Cove Salmon", "Nova Scotia Seaweed", "Eel Lake Oyster Farm"},
		species:    []string{"Atlantic salmon", "American oyster", "Blue mussel", "Sugar kelp"},
		siteTypes:  []string{"Marine Finfish", "Marine Shellfish", "Marine Plant"},
		waterTypes: []string{"Marine", "Estuarine"},
		places:     []string{"Shelburne Harbour", "Liverpool Bay", "Whycocomagh", "Jordan Bay"},
	},
	region.KeyQuebec: {
		companies:  []string{"Moules de culture des Îles", "Pétoncles 2000", "Aquaculture Gaspésie"},
		species:    []string{"Moule bleue", "Pétoncle géant", "Huître américaine", "Omble de fontaine"},
		siteTypes:  []string{"Mariculture", "Pisciculture"},
		waterTypes: []string{"Eau salée", "Eau douce"},
		regions:    []string{"Gaspésie–Îles-de-la-Madeleine", "Côte-Nord", "Bas-Saint-Laurent"},
		places:     []string{"Baie de Gaspé", "Lagune du Havre aux Maisons", "Baie des Chaleurs", "Sept-Îles"},
	},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data", "output directory for the generated CSV files")
	rows := flag.Int("rows", 25, "rows per dataset")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	if *rows <= 0 {
		flag.Usage()
		return fmt.Errorf("-rows must be positive, got %d", *rows)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, ds := range region.DatasetKeys() {
		path, err := generate(*out, ds, *rows, *seed)
		if err != nil {
			return fmt.Errorf("generate %s: %w", ds, err)
		}
		log.Printf("%s: %d rows -> %s", ds, *rows, path)
	}
	return nil
}

// generate writes one dataset file under dir and returns its path.
func generate(dir, dataset string, rows int, seed uint64) (string, error) {
	layout, ok := region.LayoutOf(dataset)
	if !ok {
		return "", fmt.Errorf("no layout for %s", dataset)
	}
	path := filepath.Join(dir, config.DefaultFileName(dataset))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Each dataset gets its own stream so adding one does not reshuffle the others.
	rng := rand.New(rand.NewPCG(seed, hashKey(dataset)))
	if err := writeDataset(f, layout, rows, rng); err != nil {
		return "", err
	}
	return path, f.Close()
}

func writeDataset(w io.Writer, layout region.Layout, rows int, rng *rand.Rand) error {
	reg, _ := region.Resolve(layout.Dataset)
	p := pools[layout.Dataset]
	prefix := strings.ToUpper(layout.Dataset[:2])

	cw := csv.NewWriter(w)
	if err := cw.Write(layout.Header); err != nil {
		return err
	}
	for i := range rows {
		cells := map[string]string{
			layout.ID:        fmt.Sprintf("%s%04d", prefix, i+1),
			layout.Name:      fmt.Sprintf("%s %d", pick(rng, p.places), i+1),
			layout.Company:   pick(rng, p.companies),
			layout.Species:   pick(rng, p.species),
			layout.SiteType:  pick(rng, p.siteTypes),
			layout.WaterType: pick(rng, p.waterTypes),
			layout.Region:    pick(rng, p.regions),
		}
		for _, d := range layout.Details {
			if _, set := cells[d]; !set {
				cells[d] = detailValue(rng, d, p)
			}
		}
		if (i+1)%blankEvery != 0 {
			first, second := encode(rng, layout.Encoding, reg.Bounds)
			cells[layout.CoordFirst] = first
			cells[layout.CoordSecond] = second
		}

		record := make([]string, len(layout.Header))
		for j, col := range layout.Header {
			record[j] = cells[col]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// encode draws a position and renders it in the dataset's native encoding.
func encode(rng *rand.Rand, enc region.Encoding, box region.Box) (string, string) {
	switch enc {
	case region.EncodingGrid:
		// West-coast Scottish waters; always inside the grid and the UK envelope.
		e := 150000 + rng.Float64()*300000
		n := 600000 + rng.Float64()*400000
		return strconv.FormatFloat(math.Round(e), 'f', 0, 64), strconv.FormatFloat(math.Round(n), 'f', 0, 64)
	}

	lat := box.MinLat + 0.1 + rng.Float64()*(box.MaxLat-box.MinLat-0.2)
	lon := box.MinLon + 0.1 + rng.Float64()*(box.MaxLon-box.MinLon-0.2)
	switch enc {
	case region.EncodingMercator:
		x := webMercatorRadius * lon * math.Pi / 180
		y := webMercatorRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
		return fmt.Sprintf("%.2f", x), fmt.Sprintf("%.2f", y)
	case region.EncodingDMS:
		return formatDMS(lat, "N", "S"), formatDMS(lon, "E", "W")
	default:
		return fmt.Sprintf("%.5f", lat), fmt.Sprintf("%.5f", lon)
	}
}

func formatDMS(v float64, pos, neg string) string {
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	deg := math.Floor(v)
	rem := (v - deg) * 60
	minutes := math.Floor(rem)
	sec := (rem - minutes) * 60
	if sec >= 59.95 {
		sec = 59.9
	}
	return fmt.Sprintf(`%.0f° %.0f' %.1f" %s`, deg, minutes, sec, hemi)
}

func detailValue(rng *rand.Rand, label string, p pool) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "biomass"), strings.Contains(lower, "kap"), strings.Contains(lower, "capacity"):
		return strconv.Itoa(500 + rng.IntN(40)*100)
	case strings.Contains(lower, "producing"):
		return pick(rng, []string{"Yes", "No"})
	case strings.Contains(lower, "licen"):
		return fmt.Sprintf("FE-%04d", 1000+rng.IntN(9000))
	default:
		if v := pick(rng, p.regions); v != "" {
			return v
		}
		return pick(rng, p.places)
	}
}

func pick(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.IntN(len(values))]
}

func hashKey(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
