package region

// Icelandic licences carry decimal degrees stored as strings.
var icelandSchema = &schema{
	key:       KeyIceland,
	id:        columns{"License Number", "Licence Number", "Location"},
	name:      columns{"Location", "Site Name", "Staðsetning"},
	company:   columns{"Company", "Rekstraraðili", "Operator"},
	species:   columns{"Species", "Tegund"},
	siteType:  columns{"License Type", "Licence Type", "Type"},
	waterType: columns{"Water Type", "Environment"},
	region:    columns{"Region", "Fjord", "Area"},
	details: []detailColumn{
		{label: "Max Biomass (t)", names: columns{"Max Biomass (t)", "Max Biomass", "Hámarkslífmassi"}},
		{label: "License Number", names: columns{"License Number", "Licence Number"}},
	},
	coords: coordinate{encoding: EncodingDecimal, first: columns{"Latitude", "Lat"}, second: columns{"Longitude", "Lon", "Long"}},
	hover: []hoverLine{
		{label: "Company", value: company},
		{label: "Species", value: speciesLine},
		{label: "License Type", value: siteType},
		{label: "Water Type", value: waterType},
		{label: "Region", value: regionName},
		{label: "Max Biomass (t)", value: detail("Max Biomass (t)")},
		{label: "License Number", value: detail("License Number")},
	},
}
