package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/softventure/timesheet-backend-go/internal/domain/dailyreport"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/response"
	dailyreportService "github.com/softventure/timesheet-backend-go/internal/service/dailyreport"
)

type DailyReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type dailyReportHandlerImpl struct {
	dailyReportService dailyreportService.DailyReportService
}

func NewDailyReportHandler(svc dailyreportService.DailyReportService) DailyReportHandler {
	return &dailyReportHandlerImpl{
		dailyReportService: svc,
	}
}

// Get handles GET /daily-reports/{employeeID}/{date}. A day without a report
// is a normal state, so it answers 200 with null data rather than 404.
func (h *dailyReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}
	date := chi.URLParam(r, "date")

	result, err := h.dailyReportService.Get(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Save handles POST /daily-reports
func (h *dailyReportHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req dailyreport.SaveDailyReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.dailyReportService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
