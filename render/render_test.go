package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theMomax/weatherboard/catalog"
	"github.com/theMomax/weatherboard/models/weather"
)

type recorder struct {
	current      *CurrentView
	hourly       []HourView
	daily        []DayView
	generations  []uint64
	currentCalls int
}

func (r *recorder) SetCurrent(gen uint64, v CurrentView) {
	r.current = &v
	r.currentCalls++
	r.generations = append(r.generations, gen)
}

func (r *recorder) SetHourly(gen uint64, v []HourView) {
	r.hourly = v
	r.generations = append(r.generations, gen)
}

func (r *recorder) SetDaily(gen uint64, v []DayView) {
	r.daily = v
	r.generations = append(r.generations, gen)
}

func testRenderer() *Renderer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(catalog.Default(), weather.Location(), logrus.NewEntry(l))
}

func decode(t *testing.T, body string, out interface{}) {
	require.NoError(t, json.Unmarshal([]byte(body), out))
}

func TestCurrentScenario(t *testing.T) {
	var doc weather.CurrentDocument
	decode(t, `{"current":{"temperature_2m":31.6,"apparent_temperature":35.2,"relative_humidity_2m":70,"wind_speed_10m":11.4,"rain":2.3,"weather_code":61}}`, &doc)

	target := &recorder{}
	require.NoError(t, testRenderer().Current(target, 4, &doc))
	require.NotNil(t, target.current)

	v := target.current
	assert.Equal(t, "32", v.Temperature)
	assert.Equal(t, "35°C", v.FeelsLike)
	assert.Equal(t, "70%", v.Humidity)
	assert.Equal(t, "11 km/h", v.Wind)
	assert.Equal(t, "2.3 mm", v.Precipitation)
	assert.Equal(t, "Slight rain", v.Condition.Label)
	assert.Equal(t, GlyphRainy, v.Glyph)
	assert.Equal(t, []uint64{4}, target.generations)
}

func TestCurrentPrecipitationFallback(t *testing.T) {
	var doc weather.CurrentDocument
	decode(t, `{"current":{"temperature_2m":30,"precipitation":0.44,"rain":0,"weather_code":3}}`, &doc)

	target := &recorder{}
	require.NoError(t, testRenderer().Current(target, 1, &doc))
	assert.Equal(t, "0.4 mm", target.current.Precipitation)

	var bare weather.CurrentDocument
	decode(t, `{"current":{"temperature_2m":30,"weather_code":3}}`, &bare)
	require.NoError(t, testRenderer().Current(target, 1, &bare))
	assert.Equal(t, "0.0 mm", target.current.Precipitation)
}

func TestShapeErrorsLeaveTargetUntouched(t *testing.T) {
	r := testRenderer()
	target := &recorder{}

	var serr *ShapeError

	err := r.Current(target, 1, &weather.CurrentDocument{})
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, SectionCurrent, serr.Section)

	err = r.Hourly(target, 1, &weather.HourlyDocument{Hourly: &weather.HourlySection{Temperature: []float64{30}}})
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, SectionHourly, serr.Section)

	err = r.Daily(target, 1, nil)
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, SectionDaily, serr.Section)

	assert.Empty(t, target.generations)
}

func TestShapeErrorIsPerSection(t *testing.T) {
	r := testRenderer()
	target := &recorder{}

	require.NoError(t, r.Current(target, 1, &weather.CurrentDocument{Current: &weather.CurrentSection{Temperature: 29}}))
	assert.Error(t, r.Current(target, 2, &weather.CurrentDocument{}))
	assert.Equal(t, "29", target.current.Temperature)
	assert.Equal(t, 1, target.currentCalls)

	var doc weather.DailyDocument
	decode(t, `{"daily":{"time":["2024-05-01"],"weather_code":[0],"temperature_2m_max":[34],"temperature_2m_min":[27]}}`, &doc)
	require.NoError(t, r.Daily(target, 2, &doc))
	assert.Len(t, target.daily, 1)
}

func hourlyDoc(n int) *weather.HourlyDocument {
	s := &weather.HourlySection{}
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, weather.Location())
	for i := 0; i < n; i++ {
		s.Time = append(s.Time, start.Add(time.Duration(i)*time.Hour).Format(weather.LayoutHour))
		s.Temperature = append(s.Temperature, 28+float64(i)/10)
		s.WeatherCode = append(s.WeatherCode, 2)
		s.PrecipitationProbability = append(s.PrecipitationProbability, float64(i*5))
	}
	return &weather.HourlyDocument{Hourly: s}
}

func TestHourlyWindow(t *testing.T) {
	target := &recorder{}
	require.NoError(t, testRenderer().Hourly(target, 1, hourlyDoc(48)))

	require.Len(t, target.hourly, Hours)
	assert.Equal(t, "12 AM", target.hourly[0].Label)
	assert.Equal(t, "11 AM", target.hourly[11].Label)
	assert.Equal(t, "", target.hourly[0].Probability)
	assert.Equal(t, "5%", target.hourly[1].Probability)
	assert.Equal(t, "", target.hourly[6].RainGlyph)
	assert.Equal(t, GlyphLightRain, target.hourly[7].RainGlyph)
	assert.Equal(t, "Partly cloudy", target.hourly[3].Condition.Label)
}

func TestHourlyShortInput(t *testing.T) {
	doc := hourlyDoc(3)
	// series shorter than the time axis
	doc.Hourly.Temperature = doc.Hourly.Temperature[:1]
	doc.Hourly.WeatherCode = nil
	doc.Hourly.PrecipitationProbability = nil
	doc.Hourly.Time = append(doc.Hourly.Time, "not a time")

	target := &recorder{}
	require.NoError(t, testRenderer().Hourly(target, 1, doc))

	require.Len(t, target.hourly, 3)
	assert.Equal(t, "28°C", target.hourly[0].Temperature)
	assert.Equal(t, "0°C", target.hourly[2].Temperature)
	assert.Equal(t, "Overcast", target.hourly[2].Condition.Label)
	assert.Equal(t, "", target.hourly[2].Probability)
	assert.Equal(t, "", target.hourly[2].RainGlyph)
}

func TestHourlyEmptyTimeAxis(t *testing.T) {
	target := &recorder{}
	require.NoError(t, testRenderer().Hourly(target, 1, &weather.HourlyDocument{Hourly: &weather.HourlySection{Time: []string{}}}))
	assert.NotNil(t, target.hourly)
	assert.Empty(t, target.hourly)
}

func TestDailyScenario(t *testing.T) {
	var doc weather.DailyDocument
	decode(t, `{"daily":{
		"time":["2024-05-01","2024-05-02","2024-05-03","2024-05-04","2024-05-05","2024-05-06","2024-05-07","2024-05-08"],
		"weather_code":[1,0,2,3,45,95,61,0],
		"temperature_2m_max":[34.6,35,33.4,34,33,32,31,30],
		"temperature_2m_min":[27.2,27,26.5,28,27,26,25,24],
		"precipitation_sum":[6.0,0,0,0,1,0,5,0]
	}}`, &doc)

	target := &recorder{}
	require.NoError(t, testRenderer().Daily(target, 1, &doc))
	require.Len(t, target.daily, Days)

	d := target.daily
	assert.Equal(t, GlyphRainy, d[0].Glyph)
	assert.Equal(t, "Mainly clear", d[0].Condition.Label)
	assert.Equal(t, "27° / 35°", d[0].Range)

	assert.Equal(t, []string{"Today", "Tomorrow", "Fri", "Sat", "Sun", "Mon", "Tue"}, []string{
		d[0].Label, d[1].Label, d[2].Label, d[3].Label, d[4].Label, d[5].Label, d[6].Label,
	})
	assert.Equal(t, []string{GlyphRainy, GlyphSunny, GlyphPartlyCloudy, GlyphPartlyCloudy, GlyphCloudy, GlyphCloudy, GlyphCloudy}, []string{
		d[0].Glyph, d[1].Glyph, d[2].Glyph, d[3].Glyph, d[4].Glyph, d[5].Glyph, d[6].Glyph,
	})
	assert.Equal(t, "27° / 33°", d[2].Range)
}

func TestDailyWithoutPrecipitationSum(t *testing.T) {
	var doc weather.DailyDocument
	decode(t, `{"daily":{"time":["2024-05-01","2024-05-02"],"weather_code":[80,1],"temperature_2m_max":[33,34],"temperature_2m_min":[27,28]}}`, &doc)

	target := &recorder{}
	require.NoError(t, testRenderer().Daily(target, 1, &doc))
	require.Len(t, target.daily, 2)
	assert.Equal(t, GlyphCloudy, target.daily[0].Glyph)
	assert.Equal(t, GlyphSunny, target.daily[1].Glyph)
}

func TestHourLabel(t *testing.T) {
	for h, want := range map[int]string{
		0:  "12 AM",
		1:  "1 AM",
		11: "11 AM",
		12: "12 PM",
		13: "1 PM",
		23: "11 PM",
	} {
		assert.Equal(t, want, HourLabel(h), fmt.Sprint(h))
	}
}

func TestRainGlyph(t *testing.T) {
	assert.Equal(t, "", RainGlyph(0))
	assert.Equal(t, "", RainGlyph(30))
	assert.Equal(t, GlyphLightRain, RainGlyph(31))
	assert.Equal(t, GlyphLightRain, RainGlyph(70))
	assert.Equal(t, GlyphRainy, RainGlyph(71))
}

func TestCurrentGlyphBanding(t *testing.T) {
	for code, want := range map[catalog.Code]string{
		0:  GlyphSunny,
		2:  GlyphSunny,
		3:  GlyphCloudy,
		45: GlyphRainy,
		65: GlyphRainy,
		71: GlyphCloudy,
		94: GlyphCloudy,
		95: GlyphStormy,
		99: GlyphStormy,
	} {
		assert.Equal(t, want, CurrentGlyph(code), fmt.Sprint(code))
	}
}

func TestNullCodesRenderAsOvercast(t *testing.T) {
	r := testRenderer()
	target := &recorder{}

	var hourly weather.HourlyDocument
	decode(t, `{"hourly":{"time":["2024-05-01T00:00"],"temperature_2m":[null],"weather_code":[null],"precipitation_probability":[null]}}`, &hourly)
	require.NoError(t, r.Hourly(target, 1, &hourly))
	require.Len(t, target.hourly, 1)
	assert.Equal(t, "Overcast", target.hourly[0].Condition.Label)
	assert.Equal(t, "0°C", target.hourly[0].Temperature)
	assert.Equal(t, "", target.hourly[0].RainGlyph)

	var daily weather.DailyDocument
	decode(t, `{"daily":{"time":["2024-05-01"],"weather_code":[null],"temperature_2m_max":[33],"temperature_2m_min":[27]}}`, &daily)
	require.NoError(t, r.Daily(target, 1, &daily))
	assert.Equal(t, "Overcast", target.daily[0].Condition.Label)
	assert.Equal(t, GlyphPartlyCloudy, target.daily[0].Glyph)

	var current weather.CurrentDocument
	decode(t, `{"current":{"temperature_2m":30,"weather_code":null}}`, &current)
	require.NoError(t, r.Current(target, 1, &current))
	assert.Equal(t, "Overcast", target.current.Condition.Label)
	assert.Equal(t, GlyphCloudy, target.current.Glyph)
}
