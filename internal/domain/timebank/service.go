package timebank

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// Service is the time & attendance accounting engine.
type Service interface {
	// ResolveDay fetches one day of punches and resolves it
	ResolveDay(ctx context.Context, employeeID string, date wallclock.Date) (DayLedgerEntry, error)

	// AggregatePeriod resolves every day of [start, end] and accumulates a PeriodLedger
	AggregatePeriod(ctx context.Context, employeeID string, start, end wallclock.Date) (PeriodLedger, error)

	// ComputeTimeBank clips [start, end] to the hire date and today, then folds the balance
	ComputeTimeBank(ctx context.Context, employeeID string, start, end wallclock.Date) (Result, error)

	// GetTimeBankReport serves the caller-facing time bank report
	GetTimeBankReport(ctx context.Context, req TimeBankReportRequest) (TimeBankReportResponse, error)

	// GetPeriodLedger serves the period summary for an employee, clipped like the time bank
	GetPeriodLedger(ctx context.Context, req PeriodLedgerRequest) (PeriodLedgerResponse, error)
}
