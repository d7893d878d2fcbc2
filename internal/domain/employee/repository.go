package employee

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// Repository reads employee profiles and the organization schedule.
type Repository interface {
	GetByID(ctx context.Context, id string) (Profile, error)

	// GetHireDate is the lower clipping bound of every time bank query. A
	// missing hire date is ErrHireDateMissing, never a zero date.
	GetHireDate(ctx context.Context, id string) (wallclock.Date, error)

	// ListActive returns active employees ordered by name. A nil department
	// means every department. Employees without a hire date are left out.
	ListActive(ctx context.Context, department *string) ([]Profile, error)

	GetScheduleDefaults(ctx context.Context) (ScheduleDefaults, error)
}

type scheduleOverride struct {
	Repository
	defaults ScheduleDefaults
}

func (s scheduleOverride) GetScheduleDefaults(ctx context.Context) (ScheduleDefaults, error) {
	return s.defaults, nil
}

// WithScheduleDefaults wraps repo so GetScheduleDefaults always returns defaults.
func WithScheduleDefaults(repo Repository, defaults ScheduleDefaults) Repository {
	return scheduleOverride{Repository: repo, defaults: defaults}
}
