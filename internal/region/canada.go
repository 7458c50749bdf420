package region

// Each Canadian province publishes its own layout; the region field always
// carries the province name.

var provinceHover = []hoverLine{
	{label: "Site ID", value: siteID},
	{label: "Company", value: company},
	{label: "Species", value: speciesLine},
	{label: "Site Type", value: siteType},
	{label: "Water Type", value: waterType},
	{label: "Province", value: regionName},
}

func withDetails(base []hoverLine, labels ...string) []hoverLine {
	out := append([]hoverLine(nil), base...)
	for _, l := range labels {
		out = append(out, hoverLine{label: l, value: detail(l)})
	}
	return out
}

var britishColumbiaSchema = &schema{
	key:         KeyBritishColumbia,
	id:          columns{"Facility Reference Number", "Site ID"},
	name:        columns{"Site Common Name", "Facility Name", "Site Name"},
	company:     columns{"Licence Holder", "License Holder", "Company"},
	species:     columns{"Species", "Licenced Species"},
	siteType:    columns{"Licence Type", "License Type", "Site Type"},
	waterType:   columns{"Water Type", "Environment"},
	fixedRegion: "British Columbia",
	details: []detailColumn{
		{label: "Area", names: columns{"Area", "Management Area"}},
	},
	coords: coordinate{encoding: EncodingDecimal, first: columns{"Latitude", "Lat"}, second: columns{"Longitude", "Lon", "Long"}},
	hover:  withDetails(provinceHover, "Area"),
}

var newBrunswickSchema = &schema{
	key:         KeyNewBrunswick,
	id:          columns{"Site Number", "Site No", "Site ID"},
	name:        columns{"Site Name", "Name", "Site Number"},
	company:     columns{"Lessee", "Company", "Operator"},
	species:     columns{"Species"},
	siteType:    columns{"Site Type", "Lease Type", "Type"},
	waterType:   columns{"Water Type"},
	fixedRegion: "New Brunswick",
	details: []detailColumn{
		{label: "Water Body", names: columns{"Water Body", "Waterbody"}},
		{label: "County", names: columns{"County"}},
	},
	coords: coordinate{encoding: EncodingMercator, first: columns{"X", "x", "POINT_X"}, second: columns{"Y", "y", "POINT_Y"}},
	hover:  withDetails(provinceHover, "Water Body", "County"),
}

var newfoundlandSchema = &schema{
	key:         KeyNewfoundland,
	id:          columns{"Site Number", "Licence Number", "Site ID"},
	name:        columns{"Site Name", "Name"},
	company:     columns{"Licence Holder", "Company", "Operator"},
	species:     columns{"Species"},
	siteType:    columns{"Site Type", "Licence Type", "Type"},
	waterType:   columns{"Water Type"},
	fixedRegion: "Newfoundland and Labrador",
	details: []detailColumn{
		{label: "Bay", names: columns{"Bay", "Bay Management Area"}},
	},
	coords: coordinate{encoding: EncodingDMS, first: columns{"Latitude", "Lat", "Latitude (DMS)"}, second: columns{"Longitude", "Long", "Longitude (DMS)"}},
	hover:  withDetails(provinceHover, "Bay"),
}

var novaScotiaSchema = &schema{
	key:         KeyNovaScotia,
	id:          columns{"Site #", "Site Number", "Lease Number", "Site ID"},
	name:        columns{"Site Name", "Name", "Site #"},
	company:     columns{"Lease Holder", "Leaseholder", "Company"},
	species:     columns{"Species", "Cultivated Species"},
	siteType:    columns{"Site Type", "Lease Type", "Type"},
	waterType:   columns{"Water Type"},
	fixedRegion: "Nova Scotia",
	details: []detailColumn{
		{label: "County", names: columns{"County"}},
	},
	coords: coordinate{encoding: EncodingDecimal, first: columns{"Lat", "Latitude"}, second: columns{"Long", "Longitude", "Lon"}},
	hover:  withDetails(provinceHover, "County"),
}

var quebecSchema = &schema{
	key:         KeyQuebec,
	id:          columns{"Numéro du site", "Numero du site", "Site ID"},
	name:        columns{"Nom du site", "Site Name"},
	company:     columns{"Exploitant", "Entreprise", "Company"},
	species:     columns{"Espèce", "Espèces", "Espece", "Species"},
	siteType:    columns{"Type d'élevage", "Type d'elevage", "Site Type"},
	waterType:   columns{"Milieu", "Water Type"},
	fixedRegion: "Quebec",
	details: []detailColumn{
		{label: "Administrative Region", names: columns{"Région", "Region administrative", "Region"}},
	},
	coords: coordinate{encoding: EncodingDecimal, first: columns{"Latitude", "Lat"}, second: columns{"Longitude", "Long", "Lon"}},
	hover:  withDetails(provinceHover, "Administrative Region"),
}
