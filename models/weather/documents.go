// Package weather holds the feed documents returned by the Open-Meteo forecast
// endpoint and the fixed location they are requested for.
package weather

import "github.com/theMomax/weatherboard/catalog"

// CurrentDocument is the response of the current-conditions endpoint.
type CurrentDocument struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   *CurrentSection `json:"current"`
}

// CurrentSection holds instantaneous values. Rain and Precipitation are
// optional in the feed.
type CurrentSection struct {
	Time                string       `json:"time"`
	Temperature         float64      `json:"temperature_2m"`
	ApparentTemperature float64      `json:"apparent_temperature"`
	RelativeHumidity    float64      `json:"relative_humidity_2m"`
	WindSpeed           float64      `json:"wind_speed_10m"`
	Precipitation       *float64     `json:"precipitation,omitempty"`
	Rain                *float64     `json:"rain,omitempty"`
	WeatherCode         catalog.Code `json:"weather_code"`
}

// PrecipitationMm returns rain if it is set and non-zero, otherwise
// precipitation if it is set and non-zero, otherwise 0.
func (c *CurrentSection) PrecipitationMm() float64 {
	if c.Rain != nil && *c.Rain != 0 {
		return *c.Rain
	}
	if c.Precipitation != nil && *c.Precipitation != 0 {
		return *c.Precipitation
	}
	return 0
}

// HourlyDocument is the response of the hourly endpoint.
type HourlyDocument struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Hourly    *HourlySection `json:"hourly"`
}

// HourlySection holds index aligned series. PrecipitationProbability is nil
// when the feed omits it.
type HourlySection struct {
	Time                     []string       `json:"time"`
	Temperature              []float64      `json:"temperature_2m"`
	WeatherCode              []catalog.Code `json:"weather_code"`
	PrecipitationProbability []float64      `json:"precipitation_probability,omitempty"`
}

// DailyDocument is the response of the daily endpoint.
type DailyDocument struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Daily     *DailySection `json:"daily"`
}

// DailySection holds index aligned series. PrecipitationSum is nil when the
// feed omits it.
type DailySection struct {
	Time             []string       `json:"time"`
	WeatherCode      []catalog.Code `json:"weather_code"`
	TemperatureMax   []float64      `json:"temperature_2m_max"`
	TemperatureMin   []float64      `json:"temperature_2m_min"`
	PrecipitationSum []float64      `json:"precipitation_sum,omitempty"`
}
