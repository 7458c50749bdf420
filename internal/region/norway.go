package region

// Norwegian locality exports use the Fiskeridirektoratet column names.
var norwaySchema = &schema{
	key:       KeyNorway,
	id:        columns{"LOK_NR", "Lokalitetsnummer", "Site ID"},
	name:      columns{"LOK_NAVN", "Lokalitetsnavn", "Site Name"},
	company:   columns{"TILL_NAVN", "Innehaver", "Company"},
	species:   columns{"ART", "Arter", "Species"},
	siteType:  columns{"LOK_PLASS", "Plassering", "Site Type"},
	waterType: columns{"VANNMILJØ", "VANNMILJO", "Water Type"},
	region:    columns{"FYLKE", "Fylke", "Region"},
	details: []detailColumn{
		{label: "Municipality", names: columns{"KOMMUNE", "Kommune"}},
		{label: "Capacity (t)", names: columns{"LOK_KAP", "Kapasitet"}},
	},
	coords: coordinate{
		encoding: EncodingDecimal,
		first:    columns{"N_GEOWGS84", "Latitude"},
		second:   columns{"Ø_GEOWGS84", "O_GEOWGS84", "E_GEOWGS84", "Longitude"},
	},
	hover: []hoverLine{
		{label: "Site ID", value: siteID},
		{label: "Company", value: company},
		{label: "Species", value: speciesLine},
		{label: "Placement", value: siteType},
		{label: "Water Type", value: waterType},
		{label: "County", value: regionName},
		{label: "Municipality", value: detail("Municipality")},
		{label: "Capacity (t)", value: detail("Capacity (t)")},
	},
}
