package region

// UK sites arrive as British National Grid eastings/northings.
var ukSchema = &schema{
	key:       KeyUK,
	id:        columns{"Site ID", "SiteID", "Site Code", "Site No"},
	name:      columns{"Site Name", "SiteName", "Name"},
	company:   columns{"Operator", "Company", "Business Name"},
	species:   columns{"Species", "Species Farmed"},
	siteType:  columns{"Aquaculture Type", "Site Type", "Type"},
	waterType: columns{"Water Type", "WaterType"},
	region:    columns{"Region", "Marine Region", "Area"},
	details: []detailColumn{
		{label: "Local Authority", names: columns{"Local Authority", "Council"}},
		{label: "Health Surveillance", names: columns{"Health Surveillance", "Health Surveillance Area"}},
		{label: "Producing", names: columns{"Producing", "Producing in Last 3 Years"}},
	},
	coords: coordinate{
		encoding: EncodingGrid,
		first:    columns{"Easting", "Eastings", "X"},
		second:   columns{"Northing", "Northings", "Y"},
	},
	hover: []hoverLine{
		{label: "Site ID", value: siteID},
		{label: "Operator", value: company},
		{label: "Species", value: speciesLine},
		{label: "Aquaculture Type", value: siteType},
		{label: "Water Type", value: waterType},
		{label: "Region", value: regionName},
		{label: "Local Authority", value: detail("Local Authority")},
		{label: "Producing", value: detail("Producing")},
	},
}
