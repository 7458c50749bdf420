package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// listPrefixRe matches numeric list prefixes some sources embed, e.g. "4: " or "1 ".
var listPrefixRe = regexp.MustCompile(`^\d+:?\s*`)

// speciesSynonyms maps lower-cased spellings, scientific names and local-language
// names to a canonical display name. Keys are accent-folded at init.
var speciesSynonyms = foldKeys(map[string]string{
	// Salmonids
	"atlantic salmon":          "Atlantic Salmon",
	"salmon":                   "Atlantic Salmon",
	"salmo salar":              "Atlantic Salmon",
	"salmon (atlantic)":        "Atlantic Salmon",
	"salmon - atlantic":        "Atlantic Salmon",
	"laks":                     "Atlantic Salmon",
	"lax":                      "Atlantic Salmon",
	"atlantshafslax":           "Atlantic Salmon",
	"saumon atlantique":        "Atlantic Salmon",
	"saumon de l'atlantique":   "Atlantic Salmon",
	"rainbow trout":            "Rainbow Trout",
	"oncorhynchus mykiss":      "Rainbow Trout",
	"steelhead":                "Rainbow Trout",
	"steelhead trout":          "Rainbow Trout",
	"regnbueørret":             "Rainbow Trout",
	"regnbogasilungur":         "Rainbow Trout",
	"truite arc-en-ciel":       "Rainbow Trout",
	"brown trout":              "Brown Trout",
	"sea trout":                "Brown Trout",
	"salmo trutta":             "Brown Trout",
	"sjøørret":                 "Brown Trout",
	"truite brune":             "Brown Trout",
	"brook trout":              "Brook Trout",
	"salvelinus fontinalis":    "Brook Trout",
	"omble de fontaine":        "Brook Trout",
	"arctic char":              "Arctic Char",
	"arctic charr":             "Arctic Char",
	"char":                     "Arctic Char",
	"charr":                    "Arctic Char",
	"salvelinus alpinus":       "Arctic Char",
	"røye":                     "Arctic Char",
	"bleikja":                  "Arctic Char",
	"omble chevalier":          "Arctic Char",
	"chinook salmon":           "Chinook Salmon",
	"chinook":                  "Chinook Salmon",
	"oncorhynchus tshawytscha": "Chinook Salmon",
	"coho salmon":              "Coho Salmon",
	"coho":                     "Coho Salmon",
	"oncorhynchus kisutch":     "Coho Salmon",
	"sablefish":                "Sablefish",
	"anoplopoma fimbria":       "Sablefish",

	// Marine finfish
	"atlantic cod":              "Atlantic Cod",
	"cod":                       "Atlantic Cod",
	"gadus morhua":              "Atlantic Cod",
	"torsk":                     "Atlantic Cod",
	"þorskur":                   "Atlantic Cod",
	"atlantic halibut":          "Atlantic Halibut",
	"halibut":                   "Atlantic Halibut",
	"hippoglossus hippoglossus": "Atlantic Halibut",
	"kveite":                    "Atlantic Halibut",
	"lúða":                      "Atlantic Halibut",
	"lumpfish":                  "Lumpfish",
	"lumpsucker":                "Lumpfish",
	"cyclopterus lumpus":        "Lumpfish",
	"rognkjeks":                 "Lumpfish",
	"hrognkelsi":                "Lumpfish",
	"ballan wrasse":             "Ballan Wrasse",
	"labrus bergylta":           "Ballan Wrasse",
	"berggylt":                  "Ballan Wrasse",
	"cleaner fish":              "Cleaner Fish",
	"rensefisk":                 "Cleaner Fish",
	"atlantic wolffish":         "Atlantic Wolffish",
	"steinbit":                  "Atlantic Wolffish",
	"turbot":                    "Turbot",
	"scophthalmus maximus":      "Turbot",
	"piggvar":                   "Turbot",

	// Shellfish
	"mussel":                            "Mussel",
	"mussels":                           "Mussel",
	"blue mussel":                       "Blue Mussel",
	"common mussel":                     "Blue Mussel",
	"mytilus edulis":                    "Blue Mussel",
	"blåskjell":                         "Blue Mussel",
	"moule bleue":                       "Blue Mussel",
	"moules":                            "Mussel",
	"oyster":                            "Oyster",
	"oysters":                           "Oyster",
	"pacific oyster":                    "Pacific Oyster",
	"crassostrea gigas":                 "Pacific Oyster",
	"magallana gigas":                   "Pacific Oyster",
	"stillehavsøsters":                  "Pacific Oyster",
	"american oyster":                   "American Oyster",
	"eastern oyster":                    "American Oyster",
	"crassostrea virginica":             "American Oyster",
	"huître américaine":                 "American Oyster",
	"huître":                            "Oyster",
	"native oyster":                     "European Flat Oyster",
	"european flat oyster":              "European Flat Oyster",
	"ostrea edulis":                     "European Flat Oyster",
	"flatøsters":                        "European Flat Oyster",
	"scallop":                           "Scallop",
	"scallops":                          "Scallop",
	"king scallop":                      "King Scallop",
	"pecten maximus":                    "King Scallop",
	"kamskjell":                         "King Scallop",
	"sea scallop":                       "Sea Scallop",
	"placopecten magellanicus":          "Sea Scallop",
	"pétoncle":                          "Scallop",
	"pétoncle géant":                    "Sea Scallop",
	"queen scallop":                     "Queen Scallop",
	"aequipecten opercularis":           "Queen Scallop",
	"quahog":                            "Quahog",
	"mercenaria mercenaria":             "Quahog",
	"soft-shell clam":                   "Soft-shell Clam",
	"mya arenaria":                      "Soft-shell Clam",
	"manila clam":                       "Manila Clam",
	"ruditapes philippinarum":           "Manila Clam",
	"geoduck":                           "Geoduck",
	"panopea generosa":                  "Geoduck",
	"sea urchin":                        "Sea Urchin",
	"green sea urchin":                  "Sea Urchin",
	"strongylocentrotus droebachiensis": "Sea Urchin",
	"kråkebolle":                        "Sea Urchin",
	"oursin vert":                       "Sea Urchin",

	// Seaweeds
	"seaweed":              "Seaweed",
	"kelp":                 "Kelp",
	"sugar kelp":           "Sugar Kelp",
	"saccharina latissima": "Sugar Kelp",
	"sukkertare":           "Sugar Kelp",
	"winged kelp":          "Winged Kelp",
	"alaria esculenta":     "Winged Kelp",
	"butare":               "Winged Kelp",
	"dulse":                "Dulse",
	"palmaria palmata":     "Dulse",
	"søl":                  "Dulse",
})

// speciesRule is one substring heuristic; every fragment must appear.
type speciesRule struct {
	fragments []string
	canonical string
}

// speciesFallbacks are checked in order after an exact lookup misses.
var speciesFallbacks = []speciesRule{
	{fragments: []string{"atlantic", "salmon"}, canonical: "Atlantic Salmon"},
	{fragments: []string{"salmo salar"}, canonical: "Atlantic Salmon"},
	{fragments: []string{"rainbow", "trout"}, canonical: "Rainbow Trout"},
	{fragments: []string{"mykiss"}, canonical: "Rainbow Trout"},
	{fragments: []string{"brook", "trout"}, canonical: "Brook Trout"},
	{fragments: []string{"fontinalis"}, canonical: "Brook Trout"},
	{fragments: []string{"brown", "trout"}, canonical: "Brown Trout"},
	{fragments: []string{"trutta"}, canonical: "Brown Trout"},
	{fragments: []string{"arctic", "char"}, canonical: "Arctic Char"},
	{fragments: []string{"alpinus"}, canonical: "Arctic Char"},
	{fragments: []string{"chinook"}, canonical: "Chinook Salmon"},
	{fragments: []string{"tshawytscha"}, canonical: "Chinook Salmon"},
	{fragments: []string{"coho"}, canonical: "Coho Salmon"},
	{fragments: []string{"kisutch"}, canonical: "Coho Salmon"},
	{fragments: []string{"gadus"}, canonical: "Atlantic Cod"},
	{fragments: []string{"halibut"}, canonical: "Atlantic Halibut"},
	{fragments: []string{"hippoglossus"}, canonical: "Atlantic Halibut"},
	{fragments: []string{"lumpfish"}, canonical: "Lumpfish"},
	{fragments: []string{"cyclopterus"}, canonical: "Lumpfish"},
	{fragments: []string{"wrasse"}, canonical: "Wrasse"},
	{fragments: []string{"labrus"}, canonical: "Wrasse"},
	{fragments: []string{"blue", "mussel"}, canonical: "Blue Mussel"},
	{fragments: []string{"mytilus"}, canonical: "Blue Mussel"},
	{fragments: []string{"mussel"}, canonical: "Mussel"},
	{fragments: []string{"pacific", "oyster"}, canonical: "Pacific Oyster"},
	{fragments: []string{"gigas"}, canonical: "Pacific Oyster"},
	{fragments: []string{"virginica"}, canonical: "American Oyster"},
	{fragments: []string{"oyster"}, canonical: "Oyster"},
	{fragments: []string{"ostrea"}, canonical: "Oyster"},
	{fragments: []string{"scallop"}, canonical: "Scallop"},
	{fragments: []string{"pecten"}, canonical: "Scallop"},
	{fragments: []string{"clam"}, canonical: "Clam"},
	{fragments: []string{"urchin"}, canonical: "Sea Urchin"},
	{fragments: []string{"kelp"}, canonical: "Kelp"},
	{fragments: []string{"saccharina"}, canonical: "Sugar Kelp"},
	{fragments: []string{"seaweed"}, canonical: "Seaweed"},
	{fragments: []string{"algae"}, canonical: "Seaweed"},
}

// NormalizeSpecies maps a raw species cell to its canonical display name.
// It never fails: unknown names are title-cased.
func NormalizeSpecies(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(listPrefixRe.ReplaceAllString(s, ""))
	if s == "" {
		return ""
	}

	if canonical, ok := lookupSpecies(s); ok {
		return canonical
	}
	return TitleCase(s)
}

// lookupSpecies tries the synonym table, then the fallback rules in order.
func lookupSpecies(s string) (string, bool) {
	key := foldKey(s)
	if canonical, ok := speciesSynonyms[key]; ok {
		return canonical, true
	}
	for _, rule := range speciesFallbacks {
		if containsAll(key, rule.fragments) {
			return rule.canonical, true
		}
	}
	return "", false
}

// SpeciesKnown reports whether raw resolves through the synonym table or a
// fallback rule rather than the title-case last resort.
func SpeciesKnown(raw string) bool {
	s := strings.TrimSpace(listPrefixRe.ReplaceAllString(strings.TrimSpace(raw), ""))
	if s == "" {
		return false
	}
	_, ok := lookupSpecies(s)
	return ok
}

// SplitSpecies divides a delimited species cell on commas, semicolons,
// ampersands and pipes. Blank, "N/A" and "unknown" entries are dropped.
func SplitSpecies(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '&' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if isBlankValue(p) || strings.EqualFold(p, "unknown") {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NormalizeSpeciesList splits a species cell and normalizes each entry,
// dropping duplicates while keeping first-seen order.
func NormalizeSpeciesList(raw string) []string {
	parts := SplitSpecies(raw)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		n := NormalizeSpecies(p)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

var waterTypeSynonyms = foldKeys(map[string]string{
	"seawater":     "Seawater",
	"sea water":    "Seawater",
	"sea":          "Seawater",
	"salt":         "Seawater",
	"saltwater":    "Seawater",
	"salt water":   "Seawater",
	"marine":       "Seawater",
	"saltvann":     "Seawater",
	"sjø":          "Seawater",
	"sjór":         "Seawater",
	"eau salée":    "Seawater",
	"freshwater":   "Freshwater",
	"fresh water":  "Freshwater",
	"fresh":        "Freshwater",
	"ferskvann":    "Freshwater",
	"ferskvatn":    "Freshwater",
	"eau douce":    "Freshwater",
	"brackish":     "Brackish",
	"brakkvann":    "Brackish",
	"eau saumâtre": "Brackish",
})

// NormalizeWaterType folds common water-type spellings; others are title-cased.
func NormalizeWaterType(raw string) string {
	s := strings.TrimSpace(raw)
	if isBlankValue(s) {
		return s
	}
	if canonical, ok := waterTypeSynonyms[foldKey(s)]; ok {
		return canonical
	}
	return TitleCase(s)
}

// TitleCase collapses whitespace and upper-cases the first letter of each token.
func TitleCase(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	// Casers are stateful; one per call keeps this safe across requests.
	caser := cases.Title(language.English)
	return caser.String(strings.Join(fields, " "))
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}

// isBlankValue reports empty, whitespace-only and "N/A" cells.
func isBlankValue(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "N/A")
}

// foldKey lower-cases, strips combining accents and collapses whitespace.
func foldKey(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return folded
}

func foldKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[foldKey(k)] = v
	}
	return out
}
