package timebank

import (
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/wallclock"
)

// MaxRangeDays bounds the days a single query may span before clipping.
const MaxRangeDays = 366

// ========================================
// TIME BANK REPORT DTOs
// ========================================

// TimeBankReportRequest is the caller-facing report query. An omitted
// EmployeeID means the authenticated employee.
type TimeBankReportRequest struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Detailed   bool    `json:"detailed,omitempty"`
}

func (r *TimeBankReportRequest) Validate() error {
	errs := validateRange(r.EmployeeID, "employeeId", r.StartDate, "startDate", r.EndDate, "endDate")
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeBankReportResponse struct {
	EmployeeID         string              `json:"employeeId"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	AsOf               string              `json:"asOf"`
	BalanceHours       float64             `json:"balanceHours"`
	TotalOvertimeHours float64             `json:"totalOvertimeHours"`
	TotalOwedHours     float64             `json:"totalOwedHours"`
	Days               []DayLedgerResponse `json:"days,omitempty"`
}

type DayLedgerResponse struct {
	Date               string   `json:"date"`
	ExpectedHours      float64  `json:"expectedHours"`
	WorkedHours        float64  `json:"workedHours"`
	OvertimeHours      float64  `json:"overtimeHours"`
	OvertimeHoursTier1 float64  `json:"overtimeHoursTier1"`
	OvertimeHoursTier2 float64  `json:"overtimeHoursTier2"`
	OwedHours          float64  `json:"owedHours"`
	Notes              []string `json:"notes"`
}

// ========================================
// PERIOD LEDGER DTOs
// ========================================

type PeriodLedgerRequest struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
}

func (r *PeriodLedgerRequest) Validate() error {
	errs := validateRange(r.EmployeeID, "employeeId", r.StartDate, "startDate", r.EndDate, "endDate")
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodLedgerResponse struct {
	EmployeeID         string  `json:"employeeId"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	TotalDays          int     `json:"totalDays"`
	PresentDays        int     `json:"presentDays"`
	AbsentDays         int     `json:"absentDays"`
	JustifiedDays      int     `json:"justifiedDays"`
	TotalHours         float64 `json:"totalHours"`
	RegularHours       float64 `json:"regularHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	OwedHours          float64 `json:"owedHours"`
	LateArrivals       int     `json:"lateArrivals"`
	EarlyDepartures    int     `json:"earlyDepartures"`
	AverageHoursPerDay float64 `json:"averageHoursPerDay"`
}

func validateRange(employeeID *string, employeeField, start, startField, end, endField string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if employeeID != nil && !validator.IsValidUUID(*employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   employeeField,
			Message: employeeField + " must be a valid UUID",
		})
	}

	startDate, startOK := validator.IsValidDate(start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   startField,
			Message: startField + " must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(end)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   endField,
			Message: endField + " must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK {
		days := wallclock.DateOf(startDate).DaysUntil(wallclock.DateOf(endDate)) + 1
		if days < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   endField,
				Message: endField + " must not be before " + startField,
			})
		} else if days > MaxRangeDays {
			errs = append(errs, validator.ValidationError{
				Field:   endField,
				Message: fmt.Sprintf("range must not exceed %d days", MaxRangeDays),
			})
		}
	}

	return errs
}
