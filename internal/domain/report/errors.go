package report

import "errors"

var (
	ErrNoActiveEmployees = errors.New("no active employees in the requested department")
)
