package employee

import "fmt"

func (s ScheduleDefaults) Validate() error {
	if s.EndTime <= s.StartTime {
		return fmt.Errorf("%w: end time %s must be after start time %s", ErrInvalidScheduleDefaults, s.EndTime, s.StartTime)
	}
	if s.LunchEnd < s.LunchStart {
		return fmt.Errorf("%w: lunch end %s is before lunch start %s", ErrInvalidScheduleDefaults, s.LunchEnd, s.LunchStart)
	}
	if s.ToleranceMinutes < 0 {
		return fmt.Errorf("%w: tolerance must not be negative", ErrInvalidScheduleDefaults)
	}
	return nil
}
