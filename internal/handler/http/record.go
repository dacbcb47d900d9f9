package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/softventure/timesheet-backend-go/internal/domain/record"
	"github.com/softventure/timesheet-backend-go/internal/handler/http/response"
)

type WorkRecordHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	SaveMonth(w http.ResponseWriter, r *http.Request)
}

type workRecordHandlerImpl struct {
	recordService record.WorkRecordService
}

func NewWorkRecordHandler(recordService record.WorkRecordService) WorkRecordHandler {
	return &workRecordHandlerImpl{
		recordService: recordService,
	}
}

// GetMonth handles GET /work-records/{employeeID}/{year}/{month}
func (h *workRecordHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	result, err := h.recordService.GetMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveMonth handles POST /work-records
func (h *workRecordHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req record.SaveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.recordService.SaveMonth(r.Context(), req, actor); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work records saved", nil)
}

// monthParams parses the {employeeID}/{year}/{month} url triple shared by the
// record and report routes.
func monthParams(w http.ResponseWriter, r *http.Request) (employeeID int64, year, month int, ok bool) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return 0, 0, 0, false
	}

	year, err = strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return 0, 0, 0, false
	}

	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return 0, 0, 0, false
	}

	return employeeID, year, month, true
}
