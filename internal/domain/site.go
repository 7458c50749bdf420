package domain

import (
	"errors"
	"strings"
)

var (
	// ErrSourceNotFound reports that no configured location for a dataset exists.
	ErrSourceNotFound = errors.New("source not found")

	// ErrParseFailure reports a structurally malformed CSV source.
	ErrParseFailure = errors.New("parse failure")
)

// RawRow is one CSV data line keyed by header name.
type RawRow map[string]string

// Get returns the trimmed value of the first column name present in the row.
// Header names are compared after trimming, so " Species " matches "Species".
func (r RawRow) Get(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok {
			return strings.TrimSpace(v)
		}
	}
	for _, name := range names {
		for k, v := range r {
			if strings.EqualFold(strings.TrimSpace(k), name) {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// Detail is a region-specific attribute carried alongside the canonical fields.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Site is the canonical normalized aquaculture site record. Latitude and
// Longitude are nil when the source coordinate was missing or unconvertible.
type Site struct {
	ID          string   `json:"site_id" csv:"site_id"`
	Name        string   `json:"site_name" csv:"site_name"`
	Company     string   `json:"company" csv:"company"`
	Species     string   `json:"species" csv:"species"`
	SpeciesList []string `json:"species_list" csv:"-"`
	SiteType    string   `json:"site_type" csv:"site_type"`
	WaterType   string   `json:"water_type" csv:"water_type"`
	Region      string   `json:"region" csv:"region"`
	Latitude    *float64 `json:"latitude,omitempty" csv:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty" csv:"longitude,omitempty"`
	Details     []Detail `json:"details,omitempty" csv:"-"`
	HoverText   string   `json:"hover_text" csv:"-"`
	Color       string   `json:"color" csv:"color"`
}

// SetPosition stores a converted coordinate, or clears both fields when ok is false.
func (s *Site) SetPosition(p Position, ok bool) {
	if !ok {
		s.Latitude, s.Longitude = nil, nil
		return
	}
	lat, lon := p.Lat, p.Lon
	s.Latitude, s.Longitude = &lat, &lon
}

// Position returns the site's coordinate and whether it has one.
func (s Site) Position() (Position, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return Position{}, false
	}
	p := Position{Lat: *s.Latitude, Lon: *s.Longitude}
	return p, p.Valid()
}

// Detail returns the value of the named detail, or "".
func (s Site) Detail(label string) string {
	for _, d := range s.Details {
		if d.Label == label {
			return d.Value
		}
	}
	return ""
}

// FilterOptions holds the sorted distinct facet values for a site collection.
type FilterOptions struct {
	Species    []string `json:"species"`
	Companies  []string `json:"companies"`
	WaterTypes []string `json:"waterTypes"`
	Regions    []string `json:"regions"`
	SiteTypes  []string `json:"siteTypes"`
}
