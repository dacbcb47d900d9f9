package report

import (
	"time"
)

// Status is the position of a monthly report in the approval workflow.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRemanded  Status = "remanded"
	StatusFinalized Status = "finalized"
)

// MonthlyReport is one employee's report for one (year, month). A row springs
// into existence as a draft the first time anything touches the month.
type MonthlyReport struct {
	ID           int64
	EmployeeID   int64
	Year         int
	Month        int
	Status       Status
	SpecialNotes *string

	SubmittedDate          *time.Time
	ManagerApprovalDate    *time.Time
	AccountingApprovalDate *time.Time
	// ApprovalDate mirrors AccountingApprovalDate for older consumers.
	ApprovalDate *time.Time
	RemandReason *string

	Overrides CountOverrides

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountOverrides are manually entered day counts. When set they replace the
// aggregator's computed values; nil means the computed value stands.
type CountOverrides struct {
	AbsentDays           *float64 `json:"absent_days"`
	PaidHolidays         *float64 `json:"paid_holidays"`
	CompensatoryHolidays *float64 `json:"compensatory_holidays"`
	TransferHolidays     *float64 `json:"transfer_holidays"`
	LateDays             *int     `json:"late_days"`
	EarlyLeaveDays       *int     `json:"early_leave_days"`
}

// NewDraft returns a freshly initialized draft report for the given month.
func NewDraft(employeeID int64, year, month int) MonthlyReport {
	return MonthlyReport{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Status:     StatusDraft,
	}
}
