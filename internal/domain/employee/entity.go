package employee

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// Profile is the read-only slice of an employee record the time clock needs.
type Profile struct {
	ID         string
	FullName   string
	Department *string
	HireDate   wallclock.Date
	Active     bool
}

// ScheduleDefaults is the organization-wide expected schedule. It drives
// lateness and early-departure counting, not the overtime split.
type ScheduleDefaults struct {
	StartTime        wallclock.TimeOfDay
	EndTime          wallclock.TimeOfDay
	LunchStart       wallclock.TimeOfDay
	LunchEnd         wallclock.TimeOfDay
	ToleranceMinutes int
}

// DefaultScheduleDefaults is used when the organization never configured one:
// 08:00-18:00 with lunch 12:00-13:00 and a 10 minute tolerance.
func DefaultScheduleDefaults() ScheduleDefaults {
	return ScheduleDefaults{
		StartTime:        8 * 3600,
		EndTime:          18 * 3600,
		LunchStart:       12 * 3600,
		LunchEnd:         13 * 3600,
		ToleranceMinutes: 10,
	}
}

// LateMinutes returns how many minutes entry is past the scheduled start, or 0
// when it falls within the tolerance window.
func (s ScheduleDefaults) LateMinutes(entry wallclock.WallClock) int {
	diff := entry.SecondsOfDay() - int(s.StartTime)
	if diff <= s.ToleranceMinutes*60 {
		return 0
	}
	return diff / 60
}

// EarlyMinutes returns how many minutes exit is before the scheduled end, or 0
// when it falls within the tolerance window.
func (s ScheduleDefaults) EarlyMinutes(exit wallclock.WallClock) int {
	diff := int(s.EndTime) - exit.SecondsOfDay()
	if diff <= s.ToleranceMinutes*60 {
		return 0
	}
	return diff / 60
}
