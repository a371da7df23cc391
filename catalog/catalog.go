// Package catalog maps Open-Meteo weather codes to display descriptors.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Code is an Open-Meteo (WMO) weather interpretation code.
type Code int

// Overcast is the code whose descriptor stands in for unknown codes.
const Overcast Code = 3

// UnmarshalJSON reads a JSON number. null, which the feeds send for hours
// without a classification, reads as Overcast.
func (c *Code) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Overcast
		return nil
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return fmt.Errorf("weather code: %w", err)
	}
	*c = Code(i)
	return nil
}

// Descriptor holds the display attributes of a weather condition.
type Descriptor struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Catalog resolves codes to descriptors. Lookup never fails.
type Catalog interface {
	Lookup(code Code) Descriptor
}

// Table is an immutable Catalog.
type Table struct {
	entries  map[Code]Descriptor
	fallback Descriptor
}

var _ Catalog = (*Table)(nil)

var defaultEntries = map[Code]Descriptor{
	0:  {"Clear sky", "fas fa-sun", "#FFD700"},
	1:  {"Mainly clear", "fas fa-cloud-sun", "#FFB347"},
	2:  {"Partly cloudy", "fas fa-cloud-sun", "#87CEEB"},
	3:  {"Overcast", "fas fa-cloud", "#A9A9A9"},
	45: {"Foggy", "fas fa-smog", "#D3D3D3"},
	48: {"Depositing rime fog", "fas fa-smog", "#D3D3D3"},
	51: {"Light drizzle", "fas fa-cloud-rain", "#4682B4"},
	53: {"Moderate drizzle", "fas fa-cloud-rain", "#4682B4"},
	55: {"Dense drizzle", "fas fa-cloud-rain", "#4682B4"},
	61: {"Slight rain", "fas fa-cloud-showers-heavy", "#1E90FF"},
	63: {"Moderate rain", "fas fa-cloud-showers-heavy", "#1E90FF"},
	65: {"Heavy rain", "fas fa-cloud-showers-heavy", "#0000FF"},
	71: {"Slight snow", "far fa-snowflake", "#F0F8FF"},
	73: {"Moderate snow", "far fa-snowflake", "#F0F8FF"},
	75: {"Heavy snow", "far fa-snowflake", "#F0F8FF"},
	80: {"Slight rain showers", "fas fa-cloud-sun-rain", "#87CEEB"},
	81: {"Moderate rain showers", "fas fa-cloud-sun-rain", "#87CEEB"},
	82: {"Violent rain showers", "fas fa-poo-storm", "#4169E1"},
	95: {"Thunderstorm", "fas fa-bolt", "#FF4500"},
	96: {"Thunderstorm with hail", "fas fa-bolt", "#FF4500"},
	99: {"Heavy thunderstorm with hail", "fas fa-bolt", "#FF4500"},
}

var defaultTable = New(defaultEntries, Overcast)

// Default returns the built-in Open-Meteo catalog.
func Default() *Table {
	return defaultTable
}

// New returns a Table holding a copy of entries. Codes missing from entries
// resolve to the descriptor of fallback, which therefore must be present.
func New(entries map[Code]Descriptor, fallback Code) *Table {
	t := &Table{
		entries: make(map[Code]Descriptor, len(entries)),
	}
	for c, d := range entries {
		t.entries[c] = d
	}
	t.fallback = t.entries[fallback]
	return t
}

// Lookup returns the descriptor for code, or the fallback descriptor.
func (t *Table) Lookup(code Code) Descriptor {
	if d, ok := t.entries[code]; ok {
		return d
	}
	return t.fallback
}

// Codes returns all known codes in ascending order.
func (t *Table) Codes() []Code {
	codes := make([]Code, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	})
	return codes
}
