package weather

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestPrecipitationMm(t *testing.T) {
	assert.Equal(t, 2.3, (&CurrentSection{Rain: f(2.3), Precipitation: f(4)}).PrecipitationMm())
	assert.Equal(t, 4.0, (&CurrentSection{Rain: f(0), Precipitation: f(4)}).PrecipitationMm())
	assert.Equal(t, 1.5, (&CurrentSection{Precipitation: f(1.5)}).PrecipitationMm())
	assert.Equal(t, 0.0, (&CurrentSection{}).PrecipitationMm())
}

func TestHourlyWithoutProbability(t *testing.T) {
	var doc HourlyDocument
	require.NoError(t, json.Unmarshal([]byte(`{"hourly":{"time":["2024-05-01T00:00"],"temperature_2m":[30.1],"weather_code":[2]}}`), &doc))
	require.NotNil(t, doc.Hourly)
	assert.Nil(t, doc.Hourly.PrecipitationProbability)
	assert.EqualValues(t, 2, doc.Hourly.WeatherCode[0])
}

func TestEndpoints(t *testing.T) {
	e := NewEndpoints("http://example.test/v1/forecast")

	u, err := url.Parse(e.Hourly)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/v1/forecast", u.Path)
	assert.Equal(t, "13.7563", q.Get("latitude"))
	assert.Equal(t, "100.5018", q.Get("longitude"))
	assert.Equal(t, "Asia/Bangkok", q.Get("timezone"))
	assert.Equal(t, "2", q.Get("forecast_days"))

	u, err = url.Parse(e.Daily)
	require.NoError(t, err)
	assert.Equal(t, "7", u.Query().Get("forecast_days"))
	assert.Contains(t, u.Query().Get("daily"), "precipitation_sum")

	u, err = url.Parse(e.Current)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("current"), "rain")
	assert.Empty(t, u.Query().Get("forecast_days"))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Asia/Bangkok", Location().String())
}
