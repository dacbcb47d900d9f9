package report

import "context"

// MonthlyReportRepository defines data access for monthly reports.
type MonthlyReportRepository interface {
	// GetByMonth returns the report row for (employee, year, month), or
	// ErrReportNotFound when no row exists yet.
	GetByMonth(ctx context.Context, employeeID int64, year, month int) (MonthlyReport, error)

	// GetOrCreate returns the existing row or inserts a fresh draft. A
	// concurrent insert of the same month must not produce a second row.
	GetOrCreate(ctx context.Context, employeeID int64, year, month int) (MonthlyReport, error)

	// UpdateGuarded persists rep only while the stored status still equals
	// expected, returning ErrStatusConflict otherwise. This is the
	// read-check-write unit the lifecycle relies on.
	UpdateGuarded(ctx context.Context, rep MonthlyReport, expected Status) (MonthlyReport, error)

	// UpdateOverrides persists the manual day-count overrides.
	UpdateOverrides(ctx context.Context, id int64, overrides CountOverrides) error

	// UpdateSpecialNotes persists the month-level special notes.
	UpdateSpecialNotes(ctx context.Context, id int64, notes *string) error
}
