package report

import (
	"context"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
)

// SummaryResponse pairs the month's report row with the computed rollup.
type SummaryResponse struct {
	Report  ReportResponse          `json:"report"`
	Summary worktime.MonthlySummary `json:"summary"`
	Days    []worktime.DailySummary `json:"days"`
}

// MonthlyReportService drives the report workflow and summary computation.
type MonthlyReportService interface {
	// Get returns the report for the month, creating a draft if none exists.
	Get(ctx context.Context, req MonthRequest) (ReportResponse, error)

	// Summary computes daily summaries for every recorded day of the month
	// and folds them into the monthly rollup, applying manual overrides.
	Summary(ctx context.Context, req MonthRequest) (SummaryResponse, error)

	// Transition moves the report between workflow states on behalf of the
	// calling actor, as a single guarded read-check-write.
	Transition(ctx context.Context, req TransitionRequest, actor Actor) (ReportResponse, error)

	// SetOverrides stores manual day-count overrides; allowed only while the
	// actor may edit the month.
	SetOverrides(ctx context.Context, req OverridesRequest, actor Actor) (ReportResponse, error)
}
