package timebank

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"golang.org/x/sync/errgroup"
)

// AggregatePeriod implements timebank.Service. The schedule defaults are read
// once for the whole range.
func (s *TimeBankServiceImpl) AggregatePeriod(ctx context.Context, employeeID string, start, end wallclock.Date) (timebank.PeriodLedger, error) {
	if employeeID == "" {
		return timebank.PeriodLedger{}, timebank.ErrEmployeeIDRequired
	}
	if end.Before(start) {
		return timebank.PeriodLedger{}, timebank.ErrInvalidDateRange
	}

	schedule, err := s.employeeRepo.GetScheduleDefaults(ctx)
	if err != nil {
		return timebank.PeriodLedger{}, fmt.Errorf("failed to get schedule defaults: %w", err)
	}

	entries, err := s.resolveRange(ctx, employeeID, start, end)
	if err != nil {
		return timebank.PeriodLedger{}, err
	}

	return Aggregate(employeeID, start, end, entries, schedule), nil
}

// Aggregate folds already resolved entries into a period ledger.
func Aggregate(employeeID string, start, end wallclock.Date, entries []timebank.DayLedgerEntry, schedule employee.ScheduleDefaults) timebank.PeriodLedger {
	ledger := timebank.NewPeriodLedger(employeeID, start, end)
	for _, entry := range entries {
		ledger.Add(entry, schedule)
	}
	return ledger
}

// resolveRange fetches and resolves every day of [start, end] with at most
// s.concurrency fetches in flight. Entries keep calendar order.
func (s *TimeBankServiceImpl) resolveRange(ctx context.Context, employeeID string, start, end wallclock.Date) ([]timebank.DayLedgerEntry, error) {
	days := wallclock.Range(start, end)
	entries := make([]timebank.DayLedgerEntry, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, day := range days {
		g.Go(func() error {
			from, to := day.Bounds()
			punches, err := s.punchRepo.ListByEmployeeBetween(gctx, employeeID, from, to)
			if err != nil {
				return fmt.Errorf("failed to fetch punches for %s: %w", day, err)
			}
			entries[i] = ResolveDay(employeeID, day, punches)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
