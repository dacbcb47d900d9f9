package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/response"
)

type MonthlyReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Transition(tr report.Transition) http.HandlerFunc
	SetOverrides(w http.ResponseWriter, r *http.Request)
}

type monthlyReportHandlerImpl struct {
	reportService report.MonthlyReportService
}

func NewMonthlyReportHandler(reportService report.MonthlyReportService) MonthlyReportHandler {
	return &monthlyReportHandlerImpl{
		reportService: reportService,
	}
}

// Get handles GET /reports/{employeeID}/{year}/{month}
func (h *monthlyReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Get(r.Context(), report.MonthRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary handles GET /reports/{employeeID}/{year}/{month}/summary
func (h *monthlyReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Summary(r.Context(), report.MonthRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Transition returns the handler for one workflow action, e.g.
// POST /reports/{employeeID}/{year}/{month}/submit.
func (h *monthlyReportHandlerImpl) Transition(tr report.Transition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID, year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		actor, err := actorFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		// The body is optional; only remand carries a reason.
		var body struct {
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		req := report.TransitionRequest{
			MonthRequest: report.MonthRequest{
				EmployeeID: employeeID,
				Year:       year,
				Month:      month,
			},
			Transition: tr,
			Reason:     body.Reason,
		}

		result, err := h.reportService.Transition(r.Context(), req, actor)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		response.Success(w, result)
	}
}

// SetOverrides handles PUT /reports/{employeeID}/{year}/{month}/overrides
func (h *monthlyReportHandlerImpl) SetOverrides(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var overrides report.CountOverrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := report.OverridesRequest{
		MonthRequest: report.MonthRequest{
			EmployeeID: employeeID,
			Year:       year,
			Month:      month,
		},
		Overrides: overrides,
	}

	result, err := h.reportService.SetOverrides(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
