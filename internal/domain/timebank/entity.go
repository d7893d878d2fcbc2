package timebank

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// Overtime multipliers. Tier hour fields already carry the weighting.
const (
	Tier1Multiplier = 1.5
	Tier2Multiplier = 2.0
)

// DayLedgerEntry is the resolved result for one employee-day.
//
// OvertimeHours == OvertimeHoursTier1 + OvertimeHoursTier2, and both tiers
// are multiplier-weighted quantities.
type DayLedgerEntry struct {
	EmployeeID         string
	Date               wallclock.Date
	ExpectedHours      float64
	WorkedHours        float64
	OvertimeHours      float64
	OvertimeHoursTier1 float64
	OvertimeHoursTier2 float64
	OwedHours          float64
	Notes              []string

	// Resolution details used by period counting and reports
	HasPunches       bool
	JustifiedAbsence bool
	FirstEntry       *wallclock.WallClock
	LastExit         *wallclock.WallClock
}

// Present reports whether the employee showed up: some punch exists and the
// day is not a justified absence.
func (e DayLedgerEntry) Present() bool {
	return e.HasPunches && !e.JustifiedAbsence
}

// Absent reports an unexplained absence on a day with expected hours.
func (e DayLedgerEntry) Absent() bool {
	return e.ExpectedHours > 0 && !e.HasPunches && !e.JustifiedAbsence
}

// PeriodLedger aggregates a contiguous range of day entries for one employee.
type PeriodLedger struct {
	EmployeeID         string
	StartDate          wallclock.Date
	EndDate            wallclock.Date
	TotalDays          int
	PresentDays        int
	AbsentDays         int
	JustifiedDays      int
	TotalHours         float64
	RegularHours       float64
	OvertimeHours      float64
	OwedHours          float64
	LateArrivals       int
	EarlyDepartures    int
	AverageHoursPerDay float64
}

// NewPeriodLedger starts an empty ledger for [start, end].
func NewPeriodLedger(employeeID string, start, end wallclock.Date) PeriodLedger {
	return PeriodLedger{EmployeeID: employeeID, StartDate: start, EndDate: end}
}

// Add folds one day into the ledger. Lateness and early departure are judged
// against schedule, which callers read once per period.
//
// A justified absence counts as neither present nor absent, yet its expected
// hours are credited to RegularHours as if worked.
func (p *PeriodLedger) Add(entry DayLedgerEntry, schedule employee.ScheduleDefaults) {
	p.TotalDays++
	p.TotalHours += entry.WorkedHours
	p.OvertimeHours += entry.OvertimeHours
	p.OwedHours += entry.OwedHours

	switch {
	case entry.JustifiedAbsence:
		p.JustifiedDays++
		p.RegularHours += entry.ExpectedHours
	case entry.Absent():
		p.AbsentDays++
	case entry.Present():
		p.PresentDays++
		p.RegularHours += min(entry.WorkedHours, entry.ExpectedHours)
		if entry.FirstEntry != nil && schedule.LateMinutes(*entry.FirstEntry) > 0 {
			p.LateArrivals++
		}
		if entry.LastExit != nil && schedule.EarlyMinutes(*entry.LastExit) > 0 {
			p.EarlyDepartures++
		}
	}

	if p.PresentDays > 0 {
		p.AverageHoursPerDay = p.TotalHours / float64(p.PresentDays)
	}
}

// Result is a time bank computed over a clipped range.
type Result struct {
	EmployeeID         string
	RequestedStart     wallclock.Date
	RequestedEnd       wallclock.Date
	EffectiveStart     wallclock.Date
	EffectiveEnd       wallclock.Date
	AsOf               time.Time
	TotalOvertimeHours float64
	TotalOwedHours     float64
	BalanceHours       float64
	Days               []DayLedgerEntry
}

// ClipRange bounds [start, end] by the hire date below and today above. ok is
// false when nothing is left to compute.
func ClipRange(start, end, hireDate, today wallclock.Date) (effectiveStart, effectiveEnd wallclock.Date, ok bool) {
	effectiveStart = wallclock.Max(start, hireDate)
	effectiveEnd = wallclock.Min(end, today)
	return effectiveStart, effectiveEnd, !effectiveEnd.Before(effectiveStart)
}
