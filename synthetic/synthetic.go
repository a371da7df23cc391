// Package synthetic generates plausible stand-in feed documents for when the
// weather service cannot be reached.
package synthetic

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/theMomax/weatherboard/catalog"
	"github.com/theMomax/weatherboard/models/weather"
)

// Default series lengths, matching the rendered windows.
const (
	HourlyCount = 12
	DailyCount  = 7
)

// Generator produces documents shaped like the live feeds. It is safe for
// concurrent use and never fails.
type Generator struct {
	m     sync.Mutex
	rnd   *rand.Rand
	clock clockwork.Clock
	loc   *time.Location
}

// New returns a Generator drawing from rnd and reading time from clock. Nil
// arguments are replaced by a time seeded source and the real clock.
func New(rnd *rand.Rand, clock clockwork.Clock, loc *time.Location) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = weather.Location()
	}
	return &Generator{
		rnd:   rnd,
		clock: clock,
		loc:   loc,
	}
}

// Current returns a current-conditions document.
func (g *Generator) Current() *weather.CurrentDocument {
	g.m.Lock()
	defer g.m.Unlock()

	rain := g.rnd.Float64() * 5
	return &weather.CurrentDocument{
		Latitude:  weather.Latitude,
		Longitude: weather.Longitude,
		Timezone:  g.loc.String(),
		Current: &weather.CurrentSection{
			Time:                g.clock.Now().In(g.loc).Format(weather.LayoutHour),
			Temperature:         float64(31 + g.rnd.Intn(3)),
			ApparentTemperature: float64(33 + g.rnd.Intn(3)),
			RelativeHumidity:    float64(60 + g.rnd.Intn(10)),
			WindSpeed:           float64(9 + g.rnd.Intn(6)),
			Rain:                &rain,
			WeatherCode:         g.code(0.7, 0.5),
		},
	}
}

// Hourly returns count hourly points starting now. A count below 1 yields the
// default HourlyCount.
func (g *Generator) Hourly(count int) *weather.HourlyDocument {
	if count < 1 {
		count = HourlyCount
	}
	g.m.Lock()
	defer g.m.Unlock()

	now := g.clock.Now().In(g.loc)
	h := &weather.HourlySection{
		Time:                     make([]string, 0, count),
		Temperature:              make([]float64, 0, count),
		WeatherCode:              make([]catalog.Code, 0, count),
		PrecipitationProbability: make([]float64, 0, count),
	}
	for i := 0; i < count; i++ {
		h.Time = append(h.Time, now.Add(time.Duration(i)*time.Hour).Format(weather.LayoutHour))
		h.Temperature = append(h.Temperature, float64(30+g.rnd.Intn(6)))
		h.WeatherCode = append(h.WeatherCode, g.code(0.7, 0.5))
		p := 0.0
		if g.rnd.Float64() > 0.7 {
			p = float64(g.rnd.Intn(100))
		}
		h.PrecipitationProbability = append(h.PrecipitationProbability, p)
	}

	return &weather.HourlyDocument{
		Latitude:  weather.Latitude,
		Longitude: weather.Longitude,
		Timezone:  g.loc.String(),
		Hourly:    h,
	}
}

// Daily returns count daily points starting today. The precipitation sum is
// left out, as the renderers treat it as optional. A count below 1 yields the
// default DailyCount.
func (g *Generator) Daily(count int) *weather.DailyDocument {
	if count < 1 {
		count = DailyCount
	}
	g.m.Lock()
	defer g.m.Unlock()

	now := g.clock.Now().In(g.loc)
	d := &weather.DailySection{
		Time:           make([]string, 0, count),
		WeatherCode:    make([]catalog.Code, 0, count),
		TemperatureMax: make([]float64, 0, count),
		TemperatureMin: make([]float64, 0, count),
	}
	for i := 0; i < count; i++ {
		d.Time = append(d.Time, now.AddDate(0, 0, i).Format(weather.LayoutDate))
		d.TemperatureMax = append(d.TemperatureMax, float64(32+g.rnd.Intn(4)))
		d.TemperatureMin = append(d.TemperatureMin, float64(28+g.rnd.Intn(3)))
		d.WeatherCode = append(d.WeatherCode, g.code(0.6, 0.4))
	}

	return &weather.DailyDocument{
		Latitude:  weather.Latitude,
		Longitude: weather.Longitude,
		Timezone:  g.loc.String(),
		Daily:     d,
	}
}

// code picks "mainly clear" above the first threshold, else "partly cloudy"
// above the second, else "overcast". The two draws are independent.
func (g *Generator) code(clear, partly float64) catalog.Code {
	if g.rnd.Float64() > clear {
		return 1
	}
	if g.rnd.Float64() > partly {
		return 2
	}
	return 3
}
