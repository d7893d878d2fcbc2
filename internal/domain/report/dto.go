package report

import (
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// MaxPeriodDays bounds a single report run.
const MaxPeriodDays = timebank.MaxRangeDays

// PeriodRequest is shared by the attendance and late-arrivals reports.
type PeriodRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Department *string `json:"department,omitempty"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		} else if days := wallclock.DateOf(start).DaysUntil(wallclock.DateOf(end)) + 1; days > MaxPeriodDays {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: fmt.Sprintf("period must not exceed %d days", MaxPeriodDays),
			})
		}
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReport struct {
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Department  *string `json:"department,omitempty"`
	GeneratedAt string  `json:"generated_at"`

	Totals    AttendanceSummary     `json:"totals"`
	Employees []AttendanceReportRow `json:"employees"`
}

type AttendanceReportRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Department     *string `json:"department"`
	EffectiveStart string  `json:"effective_start"`
	EffectiveEnd   string  `json:"effective_end"`

	Summary AttendanceSummary `json:"summary"`
}

type AttendanceSummary struct {
	TotalDays          int     `json:"total_days"`
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	JustifiedDays      int     `json:"justified_days"`
	TotalHours         float64 `json:"total_hours"`
	RegularHours       float64 `json:"regular_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	OwedHours          float64 `json:"owed_hours"`
	BalanceHours       float64 `json:"balance_hours"`
	LateArrivals       int     `json:"late_arrivals"`
	EarlyDepartures    int     `json:"early_departures"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// ========================================
// LATE ARRIVALS REPORT
// ========================================

type LateArrivalsReport struct {
	PeriodStart      string  `json:"period_start"`
	PeriodEnd        string  `json:"period_end"`
	Department       *string `json:"department,omitempty"`
	GeneratedAt      string  `json:"generated_at"`
	ScheduledStart   string  `json:"scheduled_start"`
	ToleranceMinutes int     `json:"tolerance_minutes"`
	TotalLateDays    int     `json:"total_late_days"`
	TotalLateMinutes int     `json:"total_late_minutes"`

	Rows []LateArrivalRow `json:"rows"`
}

type LateArrivalRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   *string `json:"department"`
	Date         string  `json:"date"`
	DayOfWeek    string  `json:"day_of_week"`
	ClockIn      string  `json:"clock_in"`
	LateMinutes  int     `json:"late_minutes"`
}
