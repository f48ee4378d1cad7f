package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	assert.Equal(t, Default(), loc.String())
}

func TestParseDateTime(t *testing.T) {
	loc := time.UTC
	got, err := ParseDateTime("2025-06-01", "10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, loc), got)

	_, err = ParseDateTime("2025-06-01", "25:00", loc)
	assert.Error(t, err)
}

func TestSetDefault_IgnoresInvalid(t *testing.T) {
	before := Default()
	SetDefault("bogus")
	assert.Equal(t, before, Default())
}
