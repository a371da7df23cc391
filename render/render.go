// Package render turns feed documents into display records and writes them to
// a Target.
package render

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/catalog"
	"github.com/theMomax/weatherboard/models/weather"
	"github.com/theMomax/weatherboard/utils/numbers"
)

// Fixed windows.
const (
	Hours = 12
	Days  = 7
)

// Section names, as used in ShapeError and by display stores.
const (
	SectionCurrent = "current"
	SectionHourly  = "hourly"
	SectionDaily   = "daily"
)

// Glyphs
const (
	GlyphSunny        = "🌞"
	GlyphCloudy       = "☁️"
	GlyphRainy        = "🌧️"
	GlyphStormy       = "⛈️"
	GlyphLightRain    = "🌦️"
	GlyphPartlyCloudy = "⛅"
)

// ShapeError means a document lacks the section or time series a renderer
// needs. The corresponding display section is left untouched.
type ShapeError struct {
	Section string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: %s document has no %s data", e.Section, e.Section)
}

// Target receives rendered sections. gen identifies the refresh cycle the
// records belong to.
type Target interface {
	SetCurrent(gen uint64, v CurrentView)
	SetHourly(gen uint64, v []HourView)
	SetDaily(gen uint64, v []DayView)
}

// CurrentView is the rendered current-conditions block.
type CurrentView struct {
	Temperature   string             `json:"temperature"`
	FeelsLike     string             `json:"feelsLike"`
	Humidity      string             `json:"humidity"`
	Wind          string             `json:"wind"`
	Precipitation string             `json:"precipitation"`
	Condition     catalog.Descriptor `json:"condition"`
	Glyph         string             `json:"glyph"`
}

// HourView is one hourly card. Probability is empty unless the precipitation
// probability is positive.
type HourView struct {
	Time        time.Time          `json:"time"`
	Label       string             `json:"label"`
	Temperature string             `json:"temperature"`
	Condition   catalog.Descriptor `json:"condition"`
	RainGlyph   string             `json:"rainGlyph,omitempty"`
	Probability string             `json:"probability,omitempty"`
}

// DayView is one daily card.
type DayView struct {
	Date      time.Time          `json:"date"`
	Label     string             `json:"label"`
	Glyph     string             `json:"glyph"`
	Condition catalog.Descriptor `json:"condition"`
	Range     string             `json:"range"`
}

// Renderer holds what the three section renderers share.
type Renderer struct {
	catalog catalog.Catalog
	loc     *time.Location
	log     *logrus.Entry
}

// New returns a Renderer resolving codes through c and showing times in loc.
func New(c catalog.Catalog, loc *time.Location, log *logrus.Entry) *Renderer {
	if loc == nil {
		loc = weather.Location()
	}
	return &Renderer{
		catalog: c,
		loc:     loc,
		log:     log,
	}
}

// Current renders doc to target.
func (r *Renderer) Current(target Target, gen uint64, doc *weather.CurrentDocument) error {
	if doc == nil || doc.Current == nil {
		return r.shapeError(SectionCurrent, gen)
	}
	c := doc.Current

	target.SetCurrent(gen, CurrentView{
		Temperature:   numbers.Itoa(c.Temperature),
		FeelsLike:     numbers.Itoa(c.ApparentTemperature) + "°C",
		Humidity:      numbers.Itoa(c.RelativeHumidity) + "%",
		Wind:          numbers.Itoa(c.WindSpeed) + " km/h",
		Precipitation: numbers.Fixed(c.PrecipitationMm(), 1) + " mm",
		Condition:     r.catalog.Lookup(c.WeatherCode),
		Glyph:         CurrentGlyph(c.WeatherCode),
	})
	return nil
}

// Hourly renders the first Hours entries of doc to target. Entries without a
// readable timestamp are skipped. Missing values of other series read as zero
// and missing codes as overcast.
func (r *Renderer) Hourly(target Target, gen uint64, doc *weather.HourlyDocument) error {
	if doc == nil || doc.Hourly == nil || doc.Hourly.Time == nil {
		return r.shapeError(SectionHourly, gen)
	}
	h := doc.Hourly

	views := make([]HourView, 0, Hours)
	for i := 0; i < Hours && i < len(h.Time); i++ {
		ts, err := weather.ParseHour(h.Time[i], r.loc)
		if err != nil {
			r.log.WithField("index", i).WithError(err).Debug("skipping hourly entry")
			continue
		}

		p := numbers.At(h.PrecipitationProbability, i)
		v := HourView{
			Time:        ts,
			Label:       HourLabel(ts.Hour()),
			Temperature: numbers.Itoa(numbers.At(h.Temperature, i)) + "°C",
			Condition:   r.catalog.Lookup(codeAt(h.WeatherCode, i)),
			RainGlyph:   RainGlyph(p),
		}
		if p > 0 {
			v.Probability = numbers.Itoa(p) + "%"
		}
		views = append(views, v)
	}

	target.SetHourly(gen, views)
	return nil
}

// Daily renders the first Days entries of doc to target, with the same
// degradation rules as Hourly.
func (r *Renderer) Daily(target Target, gen uint64, doc *weather.DailyDocument) error {
	if doc == nil || doc.Daily == nil || doc.Daily.Time == nil {
		return r.shapeError(SectionDaily, gen)
	}
	d := doc.Daily

	views := make([]DayView, 0, Days)
	for i := 0; i < Days && i < len(d.Time); i++ {
		date, err := weather.ParseDate(d.Time[i], r.loc)
		if err != nil {
			r.log.WithField("index", i).WithError(err).Debug("skipping daily entry")
			continue
		}

		code := codeAt(d.WeatherCode, i)
		views = append(views, DayView{
			Date:      date,
			Label:     DayLabel(i, date),
			Glyph:     DayGlyph(numbers.At(d.PrecipitationSum, i), code),
			Condition: r.catalog.Lookup(code),
			Range:     numbers.Itoa(numbers.At(d.TemperatureMin, i)) + "° / " + numbers.Itoa(numbers.At(d.TemperatureMax, i)) + "°",
		})
	}

	target.SetDaily(gen, views)
	return nil
}

func (r *Renderer) shapeError(section string, gen uint64) error {
	err := &ShapeError{Section: section}
	r.log.WithField("generation", gen).WithError(err).Error("invalid weather data, keeping previous display")
	return err
}

func codeAt(codes []catalog.Code, i int) catalog.Code {
	if i < 0 || i >= len(codes) {
		return catalog.Overcast
	}
	return codes[i]
}
