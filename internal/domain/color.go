package domain

// palette is the fixed set of marker colours assigned to companies.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	"#393b79", "#637939", "#8c6d31", "#843c39", "#7b4173",
	"#3182bd", "#e6550d", "#31a354", "#756bb1", "#636363",
}

// ColorForIndex returns the palette colour for index, wrapping around.
func ColorForIndex(index int) string {
	n := len(palette)
	return palette[((index%n)+n)%n]
}

// AssignColors sets each site's colour from the position of its company in
// the sorted company list. Sites without a listed company get index 0.
func AssignColors(sites []Site, companies []string) {
	index := make(map[string]int, len(companies))
	for i, c := range companies {
		index[c] = i
	}
	for i := range sites {
		company := firstFacetValue(sites[i].Company)
		sites[i].Color = ColorForIndex(index[company])
	}
}

func firstFacetValue(raw string) string {
	values := splitFacet(raw, nameSeparators)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
