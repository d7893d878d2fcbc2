package timebank

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// ExpectedHours maps a calendar day to its contracted hours: 9 Monday to
// Thursday, 8 on Friday and 0 on weekends. A weekend 0 means any worked time
// is overtime, not a day off.
func ExpectedHours(date wallclock.Date) float64 {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return 0
	case time.Friday:
		return 8
	default:
		return 9
	}
}
