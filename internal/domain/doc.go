// Package domain models aquaculture site records gathered from regional
// open-data CSV exports and the pure transformations that normalize them.
//
// # Data Sources
//
// Each region publishes its licensed sites in a different shape:
//
//	UK (Scotland)   British National Grid easting/northing in metres (EPSG:27700)
//	Iceland         decimal degrees, frequently stored as quoted strings
//	Norway          decimal degrees in N_GEOWGS84 / Ø_GEOWGS84, Norwegian headers
//	British Columbia, Nova Scotia, Quebec   decimal degrees
//	New Brunswick   Web Mercator X/Y in metres (EPSG:3857)
//	Newfoundland    degree-minute-second strings, e.g. 47° 33' 12" N
//
// All of them are mapped into [Site], whose Latitude/Longitude are WGS-84
// decimal degrees or nil. A coordinate that is missing, empty, zero,
// non-finite, or out of range is absent; (0, 0) is never used as a default.
//
// # Species Names
//
// Species cells mix common names, scientific names, local-language names and
// numbered list prefixes ("4: Atlantic salmon", "SALMO SALAR", "Laks").
// [NormalizeSpecies] strips prefixes, consults a folded synonym table, then
// ordered substring heuristics, and finally title-cases whatever is left.
//
// # Derived Fields
//
// Hover text is an HTML fragment built from a region-specific ordered label
// list; blank and "N/A" values are omitted. Filter facets are sorted,
// de-duplicated value lists extracted from the whole collection.
package domain
