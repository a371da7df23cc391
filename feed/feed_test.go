package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theMomax/weatherboard/models/weather"
)

func TestFetchDecodesDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "weatherboard-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"current":{"temperature_2m":31.6,"weather_code":61,"rain":2.3}}`))
	}))
	defer ts.Close()

	var doc weather.CurrentDocument
	err := NewHTTPFetcher(ts.Client(), "weatherboard-test").Fetch(context.Background(), ts.URL, &doc)
	require.NoError(t, err)
	require.NotNil(t, doc.Current)
	assert.Equal(t, 31.6, doc.Current.Temperature)
	assert.EqualValues(t, 61, doc.Current.WeatherCode)
	assert.Equal(t, 2.3, doc.Current.PrecipitationMm())
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":true,"reason":"bad latitude"}`))
	}))
	defer ts.Close()

	var doc weather.CurrentDocument
	err := NewHTTPFetcher(nil, "").Fetch(context.Background(), ts.URL, &doc)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.StatusBadRequest, terr.StatusCode)
	assert.Contains(t, terr.Body, "bad latitude")
	assert.Contains(t, err.Error(), "400")
}

func TestFetchUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	var doc weather.CurrentDocument
	err := NewHTTPFetcher(nil, "").Fetch(context.Background(), url, &doc)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Zero(t, terr.StatusCode)
}

func TestFetchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer ts.Close()

	var doc weather.HourlyDocument
	err := NewHTTPFetcher(nil, "").Fetch(context.Background(), ts.URL, &doc)

	var derr *DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ts.URL, derr.Endpoint)
}

func TestFetchDoesNotRetry(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	var doc weather.DailyDocument
	assert.Error(t, NewHTTPFetcher(nil, "").Fetch(context.Background(), ts.URL, &doc))
	assert.Equal(t, 1, calls)
}

type countingFetcher struct {
	calls int
}

func (c *countingFetcher) Fetch(ctx context.Context, endpoint string, out interface{}) error {
	c.calls++
	return nil
}

func TestRateLimitedBurstPassesThrough(t *testing.T) {
	inner := &countingFetcher{}
	limited := NewRateLimited(inner, 1, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, limited.Fetch(context.Background(), "x", nil))
	}
	assert.Equal(t, 3, inner.calls)
}

func TestRateLimitedCanceledWait(t *testing.T) {
	inner := &countingFetcher{}
	limited := NewRateLimited(inner, 0.001, 1)
	require.NoError(t, limited.Fetch(context.Background(), "x", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := limited.Fetch(ctx, "x", nil)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, 1, inner.calls)
}

func TestNewConfiguredUsesDefaults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"daily":{"time":["2024-05-01"]}}`))
	}))
	defer ts.Close()

	f := NewConfigured(ts.Client())
	// a whole refresh cycle fits into the default burst
	for i := 0; i < 3; i++ {
		var doc weather.DailyDocument
		require.NoError(t, f.Fetch(context.Background(), ts.URL, &doc))
		assert.Equal(t, []string{"2024-05-01"}, doc.Daily.Time)
	}
}
