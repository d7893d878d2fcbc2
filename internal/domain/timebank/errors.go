package timebank

import "errors"

var (
	ErrEmployeeIDRequired = errors.New("employee id is required")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrForbiddenEmployee  = errors.New("not allowed to read another employee's time bank")
)
