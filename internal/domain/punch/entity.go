package punch

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

type Kind string

const (
	KindEntry            Kind = "ENTRY"
	KindExit             Kind = "EXIT"
	KindLunchStart       Kind = "LUNCH_START"
	KindLunchEnd         Kind = "LUNCH_END"
	KindBreakStart       Kind = "BREAK_START"
	KindBreakEnd         Kind = "BREAK_END"
	KindAbsenceJustified Kind = "ABSENCE_JUSTIFIED"
)

var KindValues = []string{
	string(KindEntry),
	string(KindExit),
	string(KindLunchStart),
	string(KindLunchEnd),
	string(KindBreakStart),
	string(KindBreakEnd),
	string(KindAbsenceJustified),
}

func (k Kind) IsValid() bool {
	for _, v := range KindValues {
		if string(k) == v {
			return true
		}
	}
	return false
}

// Punch is a single clock action. At holds local wall-clock digits.
type Punch struct {
	ID         string
	EmployeeID string
	Kind       Kind
	At         wallclock.WallClock
	Valid      bool
	CreatedAt  time.Time
}
