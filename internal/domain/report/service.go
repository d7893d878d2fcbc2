package report

import "context"

type ReportService interface {
	// GenerateAttendanceReport builds one period summary per active employee
	GenerateAttendanceReport(ctx context.Context, req PeriodRequest) (AttendanceReport, error)

	// GenerateLateArrivalsReport lists every late entry, by employee name then date
	GenerateLateArrivalsReport(ctx context.Context, req PeriodRequest) (LateArrivalsReport, error)
}
