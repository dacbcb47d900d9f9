package response

import (
	"errors"
	"net/http"

	"github.com/softventure/timesheet-backend-go/internal/domain/auth"
	"github.com/softventure/timesheet-backend-go/internal/domain/dailyreport"
	"github.com/softventure/timesheet-backend-go/internal/domain/employee"
	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee id or password")
	case errors.Is(err, auth.ErrLoginNotAllowed):
		Forbidden(w, "This employee account cannot log in")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Monthly report not found")
	case errors.Is(err, report.ErrInvalidTransition):
		Conflict(w, "The report is not in a state that allows this action")
	case errors.Is(err, report.ErrStatusConflict):
		Conflict(w, "The report was modified by someone else; reload and retry")
	case errors.Is(err, report.ErrUnknownTransition):
		BadRequest(w, "Unknown report action", nil)
	case errors.Is(err, report.ErrActorRoleDenied):
		Forbidden(w, "Your role does not permit this action")
	case errors.Is(err, report.ErrNotReportOwner):
		Forbidden(w, "Only the report's owner may perform this action")
	case errors.Is(err, report.ErrReportLocked):
		Forbidden(w, "The report is locked for editing")

	// Daily report domain errors
	case errors.Is(err, dailyreport.ErrDailyReportNotFound):
		NotFound(w, "Daily report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
