package wallclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStored_IgnoresLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)
	stored := time.Date(2024, 3, 6, 22, 30, 15, 0, saoPaulo)

	w := FromStored(stored)

	assert.Equal(t, "2024-03-06 22:30:15", w.String())
	assert.Equal(t, 22, w.Hour())
	assert.Equal(t, 30, w.Minute())
	assert.Equal(t, NewDate(2024, time.March, 6), w.Date())
	assert.Equal(t, time.Date(2024, 3, 6, 22, 30, 15, 0, time.UTC), w.Stored())
}

func TestParse_RoundTrip(t *testing.T) {
	w, err := Parse("2024-01-31 07:05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31 07:05:00", w.String())

	_, err = Parse("2024-01-31T07:05:00Z")
	assert.Error(t, err)
}

func TestHoursSince(t *testing.T) {
	d := NewDate(2024, time.January, 3)
	entry := d.At(7, 0, 0)
	exit := d.At(22, 30, 0)

	assert.InDelta(t, 15.5, exit.HoursSince(entry), 1e-9)
	assert.InDelta(t, -15.5, entry.HoursSince(exit), 1e-9)
}

func TestNew_NormalizesMidnight(t *testing.T) {
	d := NewDate(2024, time.January, 31)
	w := d.At(24, 0, 0)

	assert.Equal(t, NewDate(2024, time.February, 1), w.Date())
	assert.Equal(t, 0, w.SecondsOfDay())
}

func TestDate_Range(t *testing.T) {
	start := NewDate(2024, time.February, 27)
	end := NewDate(2024, time.March, 2)

	days := Range(start, end)
	require.Len(t, days, 5)
	assert.Equal(t, "2024-02-29", days[2].String())
	assert.Equal(t, end, days[4])

	assert.Empty(t, Range(end, start))
	assert.Len(t, Range(start, start), 1)
}

func TestDate_Bounds(t *testing.T) {
	from, to := NewDate(2024, time.December, 31).Bounds()

	assert.Equal(t, "2024-12-31 00:00:00", from.String())
	assert.Equal(t, "2025-01-01 00:00:00", to.String())
	assert.InDelta(t, 24.0, to.HoursSince(from), 1e-9)
}

func TestDate_DaysUntil(t *testing.T) {
	start := NewDate(2024, time.January, 1)

	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, 365, start.DaysUntil(NewDate(2024, time.December, 31)))
	assert.Equal(t, -1, start.DaysUntil(NewDate(2023, time.December, 31)))
	assert.Equal(t, 738885, NewDate(1, time.January, 1).DaysUntil(start))
}

func TestDate_MinMax(t *testing.T) {
	a := NewDate(2024, time.January, 1)
	b := NewDate(2024, time.June, 1)

	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, a, Max(a, a))
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Wednesday, NewDate(2024, time.January, 3).Weekday())
	assert.Equal(t, time.Sunday, NewDate(2024, time.January, 7).Weekday())
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.May, 9)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-09"`, string(b))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)

	assert.Error(t, parsed.UnmarshalJSON([]byte(`"09/05/2024"`)))
}

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"08:00", "08:00:00"},
		{"17:45:30", "17:45:30"},
		{"00:00", "00:00:00"},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got.String())
	}

	_, err := ParseTimeOfDay("8am")
	assert.Error(t, err)

	start, _ := ParseTimeOfDay("08:10")
	w := start.On(NewDate(2024, time.January, 3))
	assert.Equal(t, "2024-01-03 08:10:00", w.String())
	assert.Equal(t, start, w.TimeOfDay())
}
