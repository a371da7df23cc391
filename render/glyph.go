package render

import (
	"strconv"
	"time"

	"github.com/theMomax/weatherboard/catalog"
)

// CurrentGlyph picks the pictorial indicator for the current conditions. Codes
// between 66 and 94 fall through to cloudy.
func CurrentGlyph(code catalog.Code) string {
	switch {
	case code <= 2:
		return GlyphSunny
	case code <= 3:
		return GlyphCloudy
	case code <= 65:
		return GlyphRainy
	case code >= 95:
		return GlyphStormy
	default:
		return GlyphCloudy
	}
}

// RainGlyph returns the glyph for an hourly precipitation probability in
// percent, or "".
func RainGlyph(probability float64) string {
	switch {
	case probability > 70:
		return GlyphRainy
	case probability > 30:
		return GlyphLightRain
	default:
		return ""
	}
}

// DayGlyph picks the daily indicator. Precipitation above 5 mm wins over the
// code.
func DayGlyph(precipitation float64, code catalog.Code) string {
	switch {
	case precipitation > 5:
		return GlyphRainy
	case code <= 1:
		return GlyphSunny
	case code <= 3:
		return GlyphPartlyCloudy
	default:
		return GlyphCloudy
	}
}

// HourLabel formats an hour of day on a 12-hour clock.
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return strconv.Itoa(hour) + " AM"
	case hour == 12:
		return "12 PM"
	default:
		return strconv.Itoa(hour-12) + " PM"
	}
}

// DayLabel names the day at index i of the daily window.
func DayLabel(i int, date time.Time) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return date.Weekday().String()[:3]
	}
}
