package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/response"
	"github.com/softventure/timesheet-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListCompanies(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ListCompanies handles GET /companies
func (h *masterHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListHolidays handles GET /holidays/{year}
func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	result, err := h.masterService.HolidaysByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
