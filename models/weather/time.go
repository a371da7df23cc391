package weather

import (
	"fmt"
	"time"
)

// ParseHour parses an hourly feed timestamp. Feed timestamps carry no offset
// and are local to loc. RFC 3339 timestamps, as produced for synthetic
// documents by older clients, are accepted too.
func ParseHour(s string, loc *time.Location) (time.Time, error) {
	return parse(s, loc, LayoutHour)
}

// ParseDate parses a daily feed date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return parse(s, loc, LayoutDate)
}

func parse(s string, loc *time.Location, layout string) (time.Time, error) {
	if t, err := time.ParseInLocation(layout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
	}
	return t.In(loc), nil
}
