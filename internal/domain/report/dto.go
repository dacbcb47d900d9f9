package report

import (
	"fmt"
	"time"

	"github.com/softventure/timesheet-backend-go/internal/pkg/validator"
)

type MonthRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Year       int   `json:"year"`
	Month      int   `json:"month"`
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	MonthRequest
	Transition Transition `json:"-"`
	Reason     string     `json:"reason,omitempty"`
}

func (r *TransitionRequest) Validate() error {
	if err := r.MonthRequest.Validate(); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if r.Transition == TransitionRemand && validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "a remand reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OverridesRequest struct {
	MonthRequest
	Overrides CountOverrides `json:"overrides"`
}

func (r *OverridesRequest) Validate() error {
	if err := r.MonthRequest.Validate(); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	for field, v := range map[string]*float64{
		"absent_days":           r.Overrides.AbsentDays,
		"paid_holidays":         r.Overrides.PaidHolidays,
		"compensatory_holidays": r.Overrides.CompensatoryHolidays,
		"transfer_holidays":     r.Overrides.TransferHolidays,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "override counts must not be negative",
			})
		}
	}
	for field, v := range map[string]*int{
		"late_days":        r.Overrides.LateDays,
		"early_leave_days": r.Overrides.EarlyLeaveDays,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "override counts must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID                     int64          `json:"id"`
	EmployeeID             int64          `json:"employee_id"`
	Year                   int            `json:"year"`
	Month                  int            `json:"month"`
	Status                 Status         `json:"status"`
	SpecialNotes           *string        `json:"special_notes"`
	SubmittedDate          *string        `json:"submitted_date"`
	ManagerApprovalDate    *string        `json:"manager_approval_date"`
	AccountingApprovalDate *string        `json:"accounting_approval_date"`
	ApprovalDate           *string        `json:"approval_date"`
	RemandReason           *string        `json:"remand_reason"`
	Overrides              CountOverrides `json:"overrides"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func ToResponse(rep MonthlyReport) ReportResponse {
	resp := ReportResponse{
		ID:                     rep.ID,
		EmployeeID:             rep.EmployeeID,
		Year:                   rep.Year,
		Month:                  rep.Month,
		Status:                 rep.Status,
		SpecialNotes:           rep.SpecialNotes,
		SubmittedDate:          formatDatePtr(rep.SubmittedDate),
		ManagerApprovalDate:    formatDatePtr(rep.ManagerApprovalDate),
		AccountingApprovalDate: formatDatePtr(rep.AccountingApprovalDate),
		ApprovalDate:           formatDatePtr(rep.ApprovalDate),
		Overrides:              rep.Overrides,
	}
	// The remand reason is only surfaced while the report sits in the
	// remanded state; it stays on the row for audit after resubmission.
	if rep.Status == StatusRemanded {
		resp.RemandReason = rep.RemandReason
	}
	return resp
}
