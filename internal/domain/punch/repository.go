package punch

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// Repository reads the punch ledger. Punches are created elsewhere; this
// side never writes them.
type Repository interface {
	// ListByEmployeeBetween returns the employee's punches with from <= At < to,
	// ordered ascending by timestamp.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to wallclock.WallClock) ([]Punch, error)
}
