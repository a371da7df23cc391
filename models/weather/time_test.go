package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHour(t *testing.T) {
	loc := Location()

	ts, err := ParseHour("2024-05-01T13:00", loc)
	require.NoError(t, err)
	assert.Equal(t, 13, ts.Hour())
	assert.Equal(t, loc, ts.Location())

	// UTC input is shown in local time
	ts, err = ParseHour("2024-05-01T17:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 0, ts.Hour())
	assert.Equal(t, 2, ts.Day())

	_, err = ParseHour("", loc)
	assert.Error(t, err)
	_, err = ParseHour("yesterday", loc)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-04", Location())
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d.Weekday())
}
