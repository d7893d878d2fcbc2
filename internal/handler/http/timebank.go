package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
)

type TimeBankHandler interface {
	// Time bank report from a JSON body
	Report(w http.ResponseWriter, r *http.Request)

	// Time bank report from query parameters
	Get(w http.ResponseWriter, r *http.Request)

	// Period ledger for one employee
	GetPeriodLedger(w http.ResponseWriter, r *http.Request)
}

type timeBankHandlerImpl struct {
	timeBankService timebank.Service
}

func NewTimeBankHandler(timeBankService timebank.Service) TimeBankHandler {
	return &timeBankHandlerImpl{
		timeBankService: timeBankService,
	}
}

// Report handles POST /time-bank/report
func (h *timeBankHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	var req timebank.TimeBankReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.timeBankService.GetTimeBankReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /time-bank
func (h *timeBankHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := timebank.TimeBankReportRequest{
		EmployeeID: optionalQuery(r, "employee_id"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	if d := query.Get("detailed"); d != "" {
		detailed, err := strconv.ParseBool(d)
		if err != nil {
			response.BadRequest(w, "invalid detailed parameter", nil)
			return
		}
		req.Detailed = detailed
	}

	result, err := h.timeBankService.GetTimeBankReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPeriodLedger handles GET /attendance/period
func (h *timeBankHandlerImpl) GetPeriodLedger(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := timebank.PeriodLedgerRequest{
		EmployeeID: optionalQuery(r, "employee_id"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	result, err := h.timeBankService.GetPeriodLedger(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
