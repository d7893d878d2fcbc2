package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrHireDateMissing         = errors.New("employee hire date is not recorded")
	ErrInvalidScheduleDefaults = errors.New("invalid schedule defaults")
)
