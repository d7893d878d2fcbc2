package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	timeBankService timebank.Service
	employeeRepo    employee.Repository
	now             func() time.Time
}

func NewReportService(timeBankService timebank.Service, employeeRepo employee.Repository, now func() time.Time) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		timeBankService: timeBankService,
		employeeRepo:    employeeRepo,
		now:             now,
	}
}

// employeeRun is one employee's resolved period.
type employeeRun struct {
	profile employee.Profile
	result  timebank.Result
}

// run resolves the period for every active employee of the department.
func (s *ReportServiceImpl) run(ctx context.Context, req report.PeriodRequest) ([]employeeRun, error) {
	start, _ := wallclock.ParseDate(req.StartDate)
	end, _ := wallclock.ParseDate(req.EndDate)

	profiles, err := s.employeeRepo.ListActive(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(profiles) == 0 && req.Department != nil {
		return nil, report.ErrNoActiveEmployees
	}

	runs := make([]employeeRun, 0, len(profiles))
	for _, p := range profiles {
		result, err := s.timeBankService.ComputeTimeBank(ctx, p.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to compute time bank for employee %s: %w", p.ID, err)
		}
		runs = append(runs, employeeRun{profile: p, result: result})
	}
	return runs, nil
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.PeriodRequest) (report.AttendanceReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	schedule, err := s.employeeRepo.GetScheduleDefaults(ctx)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to get schedule defaults: %w", err)
	}

	runs, err := s.run(ctx, req)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	rows := make([]report.AttendanceReportRow, 0, len(runs))
	var totals timebank.PeriodLedger
	var totalBalance float64
	for _, r := range runs {
		ledger := timebank.NewPeriodLedger(r.profile.ID, r.result.EffectiveStart, r.result.EffectiveEnd)
		for _, day := range r.result.Days {
			ledger.Add(day, schedule)
			totals.Add(day, schedule)
		}

		rows = append(rows, report.AttendanceReportRow{
			EmployeeID:     r.profile.ID,
			EmployeeName:   r.profile.FullName,
			Department:     r.profile.Department,
			EffectiveStart: r.result.EffectiveStart.String(),
			EffectiveEnd:   r.result.EffectiveEnd.String(),
			Summary:        toSummary(ledger, r.result.BalanceHours),
		})
		totalBalance += r.result.BalanceHours
	}

	return report.AttendanceReport{
		PeriodStart: req.StartDate,
		PeriodEnd:   req.EndDate,
		Department:  req.Department,
		GeneratedAt: s.now().Format(time.RFC3339),
		Totals:      toSummary(totals, totalBalance),
		Employees:   rows,
	}, nil
}

// GenerateLateArrivalsReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateLateArrivalsReport(ctx context.Context, req report.PeriodRequest) (report.LateArrivalsReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.LateArrivalsReport{}, err
	}

	schedule, err := s.employeeRepo.GetScheduleDefaults(ctx)
	if err != nil {
		return report.LateArrivalsReport{}, fmt.Errorf("failed to get schedule defaults: %w", err)
	}

	runs, err := s.run(ctx, req)
	if err != nil {
		return report.LateArrivalsReport{}, err
	}

	rows := []report.LateArrivalRow{}
	totalMinutes := 0
	for _, r := range runs {
		for _, day := range r.result.Days {
			if !day.Present() || day.FirstEntry == nil {
				continue
			}
			minutes := schedule.LateMinutes(*day.FirstEntry)
			if minutes == 0 {
				continue
			}
			rows = append(rows, report.LateArrivalRow{
				EmployeeID:   r.profile.ID,
				EmployeeName: r.profile.FullName,
				Department:   r.profile.Department,
				Date:         day.Date.String(),
				DayOfWeek:    day.Date.Weekday().String(),
				ClockIn:      day.FirstEntry.TimeOfDay().String(),
				LateMinutes:  minutes,
			})
			totalMinutes += minutes
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].Date < rows[j].Date
	})

	return report.LateArrivalsReport{
		PeriodStart:      req.StartDate,
		PeriodEnd:        req.EndDate,
		Department:       req.Department,
		GeneratedAt:      s.now().Format(time.RFC3339),
		ScheduledStart:   schedule.StartTime.String(),
		ToleranceMinutes: schedule.ToleranceMinutes,
		TotalLateDays:    len(rows),
		TotalLateMinutes: totalMinutes,
		Rows:             rows,
	}, nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func toSummary(p timebank.PeriodLedger, balance float64) report.AttendanceSummary {
	return report.AttendanceSummary{
		TotalDays:          p.TotalDays,
		PresentDays:        p.PresentDays,
		AbsentDays:         p.AbsentDays,
		JustifiedDays:      p.JustifiedDays,
		TotalHours:         round2(p.TotalHours),
		RegularHours:       round2(p.RegularHours),
		OvertimeHours:      round2(p.OvertimeHours),
		OwedHours:          round2(p.OwedHours),
		BalanceHours:       round2(balance),
		LateArrivals:       p.LateArrivals,
		EarlyDepartures:    p.EarlyDepartures,
		AverageHoursPerDay: round2(p.AverageHoursPerDay),
	}
}
