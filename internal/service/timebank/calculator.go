package timebank

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// ComputeTimeBank implements timebank.Service. The clock is read once, so a
// query running across midnight still clips against a single day.
func (s *TimeBankServiceImpl) ComputeTimeBank(ctx context.Context, employeeID string, start, end wallclock.Date) (timebank.Result, error) {
	if employeeID == "" {
		return timebank.Result{}, timebank.ErrEmployeeIDRequired
	}
	if end.Before(start) {
		return timebank.Result{}, timebank.ErrInvalidDateRange
	}

	asOf, today := s.today()

	hireDate, err := s.hireDate(ctx, employeeID)
	if err != nil {
		return timebank.Result{}, err
	}

	result := timebank.Result{
		EmployeeID:     employeeID,
		RequestedStart: start,
		RequestedEnd:   end,
		AsOf:           asOf,
		Days:           []timebank.DayLedgerEntry{},
	}

	effectiveStart, effectiveEnd, ok := timebank.ClipRange(start, end, hireDate, today)
	if !ok {
		// Nothing left after clipping: report the requested range, zero balance
		result.EffectiveStart, result.EffectiveEnd = start, end
		return result, nil
	}
	result.EffectiveStart, result.EffectiveEnd = effectiveStart, effectiveEnd

	entries, err := s.resolveRange(ctx, employeeID, effectiveStart, effectiveEnd)
	if err != nil {
		return timebank.Result{}, err
	}

	return FoldBalance(result, entries), nil
}

// FoldBalance sums overtime and owed hours of entries into result.
func FoldBalance(result timebank.Result, entries []timebank.DayLedgerEntry) timebank.Result {
	result.Days = entries
	result.TotalOvertimeHours = 0
	result.TotalOwedHours = 0
	for _, e := range entries {
		result.TotalOvertimeHours += e.OvertimeHours
		result.TotalOwedHours += e.OwedHours
	}
	result.BalanceHours = result.TotalOvertimeHours - result.TotalOwedHours
	return result
}
