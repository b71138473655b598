package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	d := time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2024-03-01"},
		{"MMMM yyyy", "March 2024"},
		{"MMMM dd, yyyy", "March 01, 2024"},
		{"dd/MM", "01/03"},
		{"no tokens", "no tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(d, tt.pattern))
		})
	}
}

func TestFormat_TwoDigitPadding(t *testing.T) {
	assert.Equal(t, "2024-12-25", Key(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)))
}

func TestParseKey_RoundTrip(t *testing.T) {
	d, err := ParseKey("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", Key(d))
	assert.Equal(t, 0, d.Hour())

	_, err = ParseKey("2024-02-30")
	require.Error(t, err)
	_, err = ParseKey("03/01/2024")
	require.Error(t, err)
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(a, c))
}

func TestAddDays_AcrossMonthAndYear(t *testing.T) {
	d := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", Key(AddDays(d, 1)))
	assert.Equal(t, "2024-11-30", Key(AddDays(d, -31)))
}

func TestStartOfWeek_IsSunday(t *testing.T) {
	// 2024-03-06 is a Wednesday
	d := time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)
	s := StartOfWeek(d)
	assert.Equal(t, time.Sunday, s.Weekday())
	assert.Equal(t, "2024-03-03", Key(s))

	sunday := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-03", Key(StartOfWeek(sunday)))
}

func TestMidnight(t *testing.T) {
	d := time.Date(2024, time.March, 6, 10, 30, 0, 0, time.UTC)
	m := Midnight(d)
	assert.True(t, IsSameDay(d, m))
	assert.Equal(t, 0, m.Hour())
	assert.Equal(t, 0, m.Minute())
}
