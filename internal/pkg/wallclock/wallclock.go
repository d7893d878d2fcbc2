// Package wallclock models calendar dates and clock readings in the
// organization's single local zone.
//
// Punch timestamps are persisted as local clock digits inside a UTC-labelled
// timestamp column. Values in this package never pass through a time zone
// conversion: FromStored reads the raw fields and Stored writes them back.
package wallclock

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02 15:04:05"
	TimeOfDayLayout = "15:04:05"

	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date, so NewDate(2024, 1, 32) is 2024-02-01.
func NewDate(year int, month time.Month, day int) Date {
	return dateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day printed on t, in t's own location.
func DateOf(t time.Time) Date {
	return dateOf(t)
}

func dateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("wallclock: invalid date %q: %w", s, err)
	}
	return dateOf(t), nil
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool           { return d == Date{} }
func (d Date) String() string         { return d.utc().Format(DateLayout) }
func (d Date) Weekday() time.Weekday  { return d.utc().Weekday() }
func (d Date) AddDays(n int) Date     { return dateOf(d.utc().AddDate(0, 0, n)) }
func (d Date) Before(other Date) bool { return d.utc().Before(other.utc()) }
func (d Date) After(other Date) bool  { return d.utc().After(other.utc()) }
func (d Date) Equal(other Date) bool  { return d == other }

// DaysUntil returns other - d in whole days, negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int((other.utc().Unix() - d.utc().Unix()) / secondsPerDay)
}

// At returns the clock reading h:m:s on d.
func (d Date) At(hour, minute, second int) WallClock {
	return New(d, hour, minute, second)
}

// StartOfDay is 00:00:00 on d.
func (d Date) StartOfDay() WallClock {
	return WallClock{date: d}
}

// Bounds returns the half-open range [d 00:00:00, d+1 00:00:00).
func (d Date) Bounds() (from, to WallClock) {
	return d.StartOfDay(), d.AddDays(1).StartOfDay()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Max returns the later of a and b.
func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Range returns every day of the closed range [start, end]. It is empty when
// end is before start.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return []Date{}
	}
	days := make([]Date, 0, start.DaysUntil(end)+1)
	for current := start; !current.After(end); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// WallClock is a local clock reading: a calendar day plus seconds since
// local midnight.
type WallClock struct {
	date    Date
	seconds int
}

// New builds a reading, normalizing overflowing fields the way time.Date does.
func New(d Date, hour, minute, second int) WallClock {
	return fromFields(time.Date(d.Year, d.Month, d.Day, hour, minute, second, 0, time.UTC))
}

// FromStored reinterprets a persisted timestamp. The digits are taken as-is;
// the location attached to t is ignored.
func FromStored(t time.Time) WallClock {
	return fromFields(t)
}

func fromFields(t time.Time) WallClock {
	h, m, s := t.Clock()
	return WallClock{date: dateOf(t), seconds: h*3600 + m*60 + s}
}

func Parse(s string) (WallClock, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return WallClock{}, fmt.Errorf("wallclock: invalid timestamp %q: %w", s, err)
	}
	return fromFields(t), nil
}

// Stored returns the value to persist: the same digits labelled UTC.
func (w WallClock) Stored() time.Time {
	return w.date.utc().Add(time.Duration(w.seconds) * time.Second)
}

func (w WallClock) Date() Date           { return w.date }
func (w WallClock) SecondsOfDay() int    { return w.seconds }
func (w WallClock) Hour() int            { return w.seconds / 3600 }
func (w WallClock) Minute() int          { return (w.seconds % 3600) / 60 }
func (w WallClock) TimeOfDay() TimeOfDay { return TimeOfDay(w.seconds) }
func (w WallClock) IsZero() bool         { return w == WallClock{} }
func (w WallClock) String() string       { return w.Stored().Format(DateTimeLayout) }

func (w WallClock) Before(other WallClock) bool { return w.Stored().Before(other.Stored()) }
func (w WallClock) After(other WallClock) bool  { return w.Stored().After(other.Stored()) }

// HoursSince returns w - other in fractional hours.
func (w WallClock) HoursSince(other WallClock) float64 {
	return w.Stored().Sub(other.Stored()).Hours()
}

func (w WallClock) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// TimeOfDay is a local clock time without a date, in seconds since midnight.
type TimeOfDay int

// ParseTimeOfDay accepts "15:04:05" and "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("wallclock: invalid time of day %q: %w", s, err)
		}
	}
	h, m, sec := t.Clock()
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

// On returns the reading at t on day d.
func (t TimeOfDay) On(d Date) WallClock {
	return WallClock{date: d, seconds: int(t)}
}

func (t TimeOfDay) String() string {
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
