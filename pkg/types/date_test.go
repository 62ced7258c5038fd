package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(2026, time.September, 15, 23, 59, 58, 0, time.FixedZone("MSK", 3*3600)))

	assert.Equal(t, "2026-09-15", d.String())
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestNewDateFromString(t *testing.T) {
	d, err := NewDateFromString("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", d.String())

	_, err = NewDateFromString("15.09.2026")
	assert.Error(t, err)

	_, err = NewDateFromString("")
	assert.Error(t, err)
}

func TestDate_Comparisons(t *testing.T) {
	a, _ := NewDateFromString("2026-09-10")
	b, _ := NewDateFromString("2026-09-12")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Before(a), "a date is not before itself")
}

func TestDate_AddDaysAndDaysUntil(t *testing.T) {
	d, _ := NewDateFromString("2026-09-28")

	assert.Equal(t, "2026-10-01", d.AddDays(3).String(), "crosses month boundary")
	assert.Equal(t, "2026-09-27", d.AddDays(-1).String())
	assert.Equal(t, 3, d.DaysUntil(d.AddDays(3)))
	assert.Equal(t, 0, d.DaysUntil(d))
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date

	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestDate_ScanFromDriverValues(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-15", d.String())

	require.NoError(t, d.Scan("2026-01-02"))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
