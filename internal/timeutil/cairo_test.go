package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	parsed, err := ParseLocal(DateLayout, "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, 31, parsed.Day())
	assert.Equal(t, Cairo, parsed.Location())
}

func TestStartAndEndOfDayBracketTheDay(t *testing.T) {
	noon := time.Date(2026, 5, 10, 12, 30, 0, 0, Cairo)

	start := StartOfDay(noon)
	end := EndOfDay(noon)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, start.Before(noon))
	assert.True(t, end.After(noon))
	// Same calendar day on both ends
	assert.Equal(t, noon.Day(), start.Day())
	assert.Equal(t, noon.Day(), end.Day())
}

func TestEndOfDayIsInclusiveBound(t *testing.T) {
	// A record stamped 23:59:59 on the boundary day must not be after
	// EndOfDay of that day
	day := time.Date(2026, 5, 10, 0, 0, 0, 0, Cairo)
	lastSecond := time.Date(2026, 5, 10, 23, 59, 59, 0, Cairo)

	assert.False(t, lastSecond.After(EndOfDay(day)))
	assert.False(t, StartOfDay(day).After(lastSecond))
}

func TestToLocalConvertsZone(t *testing.T) {
	utc := time.Date(2026, 5, 10, 22, 0, 0, 0, time.UTC)
	local := ToLocal(utc)
	assert.Equal(t, Cairo, local.Location())
	assert.True(t, utc.Equal(local))
}
