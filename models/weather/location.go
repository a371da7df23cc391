package weather

import (
	"net/url"
	"strconv"
	"time"

	// the board renders in Asia/Bangkok regardless of the host's zoneinfo
	_ "time/tzdata"
)

// The location and query shape are fixed.
const (
	Latitude  = 13.7563
	Longitude = 100.5018
	Timezone  = "Asia/Bangkok"

	ForecastURL = "https://api.open-meteo.com/v1/forecast"

	HourlyForecastDays = 2
	DailyForecastDays  = 7
)

// Time layouts used by the feeds.
const (
	LayoutHour = "2006-01-02T15:04"
	LayoutDate = "2006-01-02"
)

// Location returns the time zone the feeds are requested in.
func Location() *time.Location {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// Endpoints are the three feed URLs of one refresh cycle.
type Endpoints struct {
	Current string
	Hourly  string
	Daily   string
}

// NewEndpoints builds the feed URLs against base, which is ForecastURL outside
// of tests.
func NewEndpoints(base string) Endpoints {
	return Endpoints{
		Current: build(base, url.Values{
			"current": {"temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,rain,weather_code,wind_speed_10m"},
		}),
		Hourly: build(base, url.Values{
			"hourly":        {"temperature_2m,weather_code,precipitation_probability"},
			"forecast_days": {strconv.Itoa(HourlyForecastDays)},
		}),
		Daily: build(base, url.Values{
			"daily":         {"weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum"},
			"forecast_days": {strconv.Itoa(DailyForecastDays)},
		}),
	}
}

// DefaultEndpoints returns the production feed URLs.
func DefaultEndpoints() Endpoints {
	return NewEndpoints(ForecastURL)
}

func build(base string, params url.Values) string {
	params.Set("latitude", strconv.FormatFloat(Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(Longitude, 'f', -1, 64))
	params.Set("timezone", Timezone)
	return base + "?" + params.Encode()
}
