package timebank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"github.com/shopspring/decimal"
)

// Config holds time bank service configuration
type Config struct {
	Location         *time.Location   // default: time.UTC
	Now              func() time.Time // default: time.Now
	FetchConcurrency int              // default: 4
}

type TimeBankServiceImpl struct {
	punchRepo    punch.Repository
	employeeRepo employee.Repository
	loc          *time.Location
	now          func() time.Time
	concurrency  int
}

func NewTimeBankService(punchRepo punch.Repository, employeeRepo employee.Repository, cfg Config) timebank.Service {
	// Set defaults
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 4
	}

	return &TimeBankServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		loc:          cfg.Location,
		now:          cfg.Now,
		concurrency:  cfg.FetchConcurrency,
	}
}

// today is the organization-local calendar day of the injected clock.
func (s *TimeBankServiceImpl) today() (time.Time, wallclock.Date) {
	asOf := s.now().In(s.loc)
	return asOf, wallclock.DateOf(asOf)
}

// ResolveDay implements timebank.Service.
func (s *TimeBankServiceImpl) ResolveDay(ctx context.Context, employeeID string, date wallclock.Date) (timebank.DayLedgerEntry, error) {
	if employeeID == "" {
		return timebank.DayLedgerEntry{}, timebank.ErrEmployeeIDRequired
	}

	from, to := date.Bounds()
	punches, err := s.punchRepo.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return timebank.DayLedgerEntry{}, fmt.Errorf("failed to fetch punches for %s: %w", date, err)
	}

	return ResolveDay(employeeID, date, punches), nil
}

// GetTimeBankReport implements timebank.Service.
func (s *TimeBankServiceImpl) GetTimeBankReport(ctx context.Context, req timebank.TimeBankReportRequest) (timebank.TimeBankReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timebank.TimeBankReportResponse{}, err
	}

	employeeID, err := s.resolveEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return timebank.TimeBankReportResponse{}, err
	}

	start, _ := wallclock.ParseDate(req.StartDate)
	end, _ := wallclock.ParseDate(req.EndDate)

	result, err := s.ComputeTimeBank(ctx, employeeID, start, end)
	if err != nil {
		return timebank.TimeBankReportResponse{}, err
	}

	return toTimeBankReportResponse(result, req.Detailed), nil
}

// GetPeriodLedger implements timebank.Service.
func (s *TimeBankServiceImpl) GetPeriodLedger(ctx context.Context, req timebank.PeriodLedgerRequest) (timebank.PeriodLedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return timebank.PeriodLedgerResponse{}, err
	}

	employeeID, err := s.resolveEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return timebank.PeriodLedgerResponse{}, err
	}

	start, _ := wallclock.ParseDate(req.StartDate)
	end, _ := wallclock.ParseDate(req.EndDate)

	hireDate, err := s.hireDate(ctx, employeeID)
	if err != nil {
		return timebank.PeriodLedgerResponse{}, err
	}

	_, today := s.today()
	effectiveStart, effectiveEnd, ok := timebank.ClipRange(start, end, hireDate, today)
	if !ok {
		return toPeriodLedgerResponse(timebank.NewPeriodLedger(employeeID, start, end)), nil
	}

	ledger, err := s.AggregatePeriod(ctx, employeeID, effectiveStart, effectiveEnd)
	if err != nil {
		return timebank.PeriodLedgerResponse{}, err
	}

	return toPeriodLedgerResponse(ledger), nil
}

// resolveEmployeeID defaults to the caller's own employee. Reading someone
// else requires the timebank.view_all permission.
func (s *TimeBankServiceImpl) resolveEmployeeID(ctx context.Context, requested *string) (string, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	if requested == nil || *requested == claims.EmployeeID {
		if claims.EmployeeID == "" {
			return "", timebank.ErrEmployeeIDRequired
		}
		return claims.EmployeeID, nil
	}

	if !user.HasPermission(claims.Role, user.PermissionTimeBankViewAll) {
		return "", timebank.ErrForbiddenEmployee
	}
	return *requested, nil
}

func (s *TimeBankServiceImpl) hireDate(ctx context.Context, employeeID string) (wallclock.Date, error) {
	hireDate, err := s.employeeRepo.GetHireDate(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrHireDateMissing) {
			return wallclock.Date{}, err
		}
		return wallclock.Date{}, fmt.Errorf("failed to get hire date: %w", err)
	}
	if hireDate.IsZero() {
		return wallclock.Date{}, employee.ErrHireDateMissing
	}
	return hireDate, nil
}

func roundHours(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func toTimeBankReportResponse(result timebank.Result, detailed bool) timebank.TimeBankReportResponse {
	resp := timebank.TimeBankReportResponse{
		EmployeeID:         result.EmployeeID,
		StartDate:          result.EffectiveStart.String(),
		EndDate:            result.EffectiveEnd.String(),
		AsOf:               result.AsOf.Format(time.RFC3339),
		BalanceHours:       roundHours(result.BalanceHours),
		TotalOvertimeHours: roundHours(result.TotalOvertimeHours),
		TotalOwedHours:     roundHours(result.TotalOwedHours),
	}

	if detailed {
		resp.Days = make([]timebank.DayLedgerResponse, 0, len(result.Days))
		for _, d := range result.Days {
			resp.Days = append(resp.Days, toDayLedgerResponse(d))
		}
	}

	return resp
}

func toDayLedgerResponse(d timebank.DayLedgerEntry) timebank.DayLedgerResponse {
	notes := d.Notes
	if notes == nil {
		notes = []string{}
	}
	return timebank.DayLedgerResponse{
		Date:               d.Date.String(),
		ExpectedHours:      roundHours(d.ExpectedHours),
		WorkedHours:        roundHours(d.WorkedHours),
		OvertimeHours:      roundHours(d.OvertimeHours),
		OvertimeHoursTier1: roundHours(d.OvertimeHoursTier1),
		OvertimeHoursTier2: roundHours(d.OvertimeHoursTier2),
		OwedHours:          roundHours(d.OwedHours),
		Notes:              notes,
	}
}

func toPeriodLedgerResponse(p timebank.PeriodLedger) timebank.PeriodLedgerResponse {
	return timebank.PeriodLedgerResponse{
		EmployeeID:         p.EmployeeID,
		StartDate:          p.StartDate.String(),
		EndDate:            p.EndDate.String(),
		TotalDays:          p.TotalDays,
		PresentDays:        p.PresentDays,
		AbsentDays:         p.AbsentDays,
		JustifiedDays:      p.JustifiedDays,
		TotalHours:         roundHours(p.TotalHours),
		RegularHours:       roundHours(p.RegularHours),
		OvertimeHours:      roundHours(p.OvertimeHours),
		OwedHours:          roundHours(p.OwedHours),
		LateArrivals:       p.LateArrivals,
		EarlyDepartures:    p.EarlyDepartures,
		AverageHoursPerDay: roundHours(p.AverageHoursPerDay),
	}
}
