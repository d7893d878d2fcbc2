package timebank

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

const (
	assumedLunchHours = 1.0
	nightPremiumStart = 22
)

// Day ledger notes
const (
	NoteAbsence           = "absence"
	NoteJustifiedAbsence  = "justified absence"
	NoteEntryMissing      = "entry not recorded"
	NoteExitMissing       = "exit not recorded"
	NoteEntryExitMissing  = "entry and exit not recorded"
	NoteExitBeforeEntry   = "exit recorded before entry, worked hours set to 0"
	NoteLunchAssumed      = "lunch assumed 1h"
	NoteLunchInvalid      = "lunch end not after lunch start, lunch assumed 1h"
	noteInvalidPunchesFmt = "%d invalid punch(es) ignored"
)

// dayPunches holds the punches that drive the resolution of one day.
type dayPunches struct {
	entry      *wallclock.WallClock
	exit       *wallclock.WallClock
	lunchStart *wallclock.WallClock
	lunchEnd   *wallclock.WallClock
	justified  bool
}

// collect keeps the earliest ENTRY, the latest EXIT and the earliest lunch
// boundaries. Break punches do not affect worked hours.
func collect(punches []punch.Punch) dayPunches {
	var d dayPunches
	for _, p := range punches {
		at := p.At
		switch p.Kind {
		case punch.KindEntry:
			if d.entry == nil || at.Before(*d.entry) {
				d.entry = &at
			}
		case punch.KindExit:
			if d.exit == nil || at.After(*d.exit) {
				d.exit = &at
			}
		case punch.KindLunchStart:
			if d.lunchStart == nil || at.Before(*d.lunchStart) {
				d.lunchStart = &at
			}
		case punch.KindLunchEnd:
			if d.lunchEnd == nil || at.Before(*d.lunchEnd) {
				d.lunchEnd = &at
			}
		case punch.KindAbsenceJustified:
			d.justified = true
		}
	}
	return d
}

// ResolveDay turns one day of punches into a day ledger entry. Punch
// timestamps are local wall-clock values. Data-quality problems never fail
// the resolution; they lower the result conservatively and leave a note.
func ResolveDay(employeeID string, date wallclock.Date, punches []punch.Punch) timebank.DayLedgerEntry {
	entry := timebank.DayLedgerEntry{
		EmployeeID:    employeeID,
		Date:          date,
		ExpectedHours: ExpectedHours(date),
		Notes:         []string{},
	}

	valid := make([]punch.Punch, 0, len(punches))
	for _, p := range punches {
		if p.Valid {
			valid = append(valid, p)
		}
	}
	if invalid := len(punches) - len(valid); invalid > 0 {
		entry.Notes = append(entry.Notes, fmt.Sprintf(noteInvalidPunchesFmt, invalid))
	}

	if len(valid) == 0 {
		if entry.ExpectedHours > 0 {
			entry.OwedHours = entry.ExpectedHours
			entry.Notes = append(entry.Notes, NoteAbsence)
		}
		return entry
	}
	entry.HasPunches = true

	day := collect(valid)
	entry.FirstEntry = day.entry
	entry.LastExit = day.exit

	if day.justified {
		entry.JustifiedAbsence = true
		entry.Notes = append(entry.Notes, NoteJustifiedAbsence)
		return entry
	}

	if day.entry == nil || day.exit == nil {
		switch {
		case day.entry == nil && day.exit == nil:
			entry.Notes = append(entry.Notes, NoteEntryExitMissing)
		case day.entry == nil:
			entry.Notes = append(entry.Notes, NoteEntryMissing)
		default:
			entry.Notes = append(entry.Notes, NoteExitMissing)
		}
		entry.OwedHours = entry.ExpectedHours
		return entry
	}

	worked, workedAfter22 := 0.0, 0.0
	if total := day.exit.HoursSince(*day.entry); total < 0 {
		entry.Notes = append(entry.Notes, NoteExitBeforeEntry)
	} else {
		var intervals [][2]wallclock.WallClock
		var lunch float64
		switch {
		case day.lunchStart == nil || day.lunchEnd == nil:
			entry.Notes = append(entry.Notes, NoteLunchAssumed)
		case !day.lunchEnd.After(*day.lunchStart):
			entry.Notes = append(entry.Notes, NoteLunchInvalid)
		default:
			lunch = day.lunchEnd.HoursSince(*day.lunchStart)
			intervals = [][2]wallclock.WallClock{
				{*day.entry, *day.lunchStart},
				{*day.lunchEnd, *day.exit},
			}
		}
		if intervals == nil {
			lunch = assumedLunchHours
			intervals = [][2]wallclock.WallClock{{*day.entry, *day.exit}}
		}

		worked = max(0, total-lunch)

		nightStart := date.At(nightPremiumStart, 0, 0)
		nightEnd := date.AddDays(1).StartOfDay()
		for _, iv := range intervals {
			workedAfter22 += overlapHours(iv[0], iv[1], nightStart, nightEnd)
		}
		workedAfter22 = min(workedAfter22, worked)
	}
	entry.WorkedHours = worked

	splitOvertime(&entry, date, worked, workedAfter22)
	return entry
}

// splitOvertime fills the overtime tiers and owed hours. Tier fields carry
// multiplier-weighted hours.
func splitOvertime(entry *timebank.DayLedgerEntry, date wallclock.Date, worked, workedAfter22 float64) {
	expected := entry.ExpectedHours

	switch {
	case expected > 0 && worked >= expected:
		raw := worked - expected
		tier2 := min(workedAfter22, raw)
		tier1 := raw - tier2
		entry.OvertimeHoursTier1 = tier1 * timebank.Tier1Multiplier
		entry.OvertimeHoursTier2 = tier2 * timebank.Tier2Multiplier
	case expected > 0:
		entry.OwedHours = expected - worked
	case worked > 0 && date.Weekday() == time.Sunday:
		entry.OvertimeHoursTier2 = worked * timebank.Tier2Multiplier
	case worked > 0:
		entry.OvertimeHoursTier1 = (worked - workedAfter22) * timebank.Tier1Multiplier
		entry.OvertimeHoursTier2 = workedAfter22 * timebank.Tier2Multiplier
	}

	entry.OvertimeHours = entry.OvertimeHoursTier1 + entry.OvertimeHoursTier2
}

// overlapHours returns the length of [aStart, aEnd] ∩ [bStart, bEnd) in hours.
func overlapHours(aStart, aEnd, bStart, bEnd wallclock.WallClock) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.HoursSince(start)
}
