package domain

import (
	"slices"
	"strings"
)

// ExtractFilters scans a site collection and returns the sorted distinct
// values of every filterable attribute. Species facets match each site's
// SpeciesList, so synonymous spellings collapse to one entry.
func ExtractFilters(sites []Site) FilterOptions {
	var species, companies, waterTypes, regions, siteTypes []string
	for _, s := range sites {
		species = append(species, NormalizeSpeciesList(s.Species)...)
		companies = append(companies, splitFacet(s.Company, nameSeparators)...)
		waterTypes = append(waterTypes, splitFacet(s.WaterType, multiValueSeparators)...)
		regions = append(regions, splitFacet(s.Region, nameSeparators)...)
		siteTypes = append(siteTypes, splitFacet(s.SiteType, multiValueSeparators)...)
	}

	return FilterOptions{
		Species:    uniqueSorted(species),
		Companies:  uniqueSorted(companies),
		WaterTypes: uniqueSorted(waterTypes),
		Regions:    uniqueSorted(regions),
		SiteTypes:  uniqueSorted(siteTypes),
	}
}

const (
	multiValueSeparators = ",;|"
	// Company and region names legitimately contain commas
	// ("Cooke Aquaculture Scotland, Ltd"), so only ; and | split them.
	nameSeparators = ";|"
)

func splitFacet(raw, separators string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if isBlankValue(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// uniqueSorted sorts values and removes duplicates and blanks. The result is never nil.
func uniqueSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if isBlankValue(v) {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
