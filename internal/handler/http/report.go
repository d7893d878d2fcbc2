package http

import (
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance report
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Late arrivals report
	GetLateArrivalsReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func periodRequestFromQuery(r *http.Request) report.PeriodRequest {
	return report.PeriodRequest{
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Department: optionalQuery(r, "department"),
	}
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateAttendanceReport(r.Context(), periodRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLateArrivalsReport handles GET /reports/late-arrivals
func (h *reportHandlerImpl) GetLateArrivalsReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateLateArrivalsReport(r.Context(), periodRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
