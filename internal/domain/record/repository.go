package record

import "context"

// WorkRecordRepository defines data access for timesheet rows.
type WorkRecordRepository interface {
	// GetMonth returns the month's rows ordered by date.
	GetMonth(ctx context.Context, employeeID int64, year, month int) ([]WorkRecord, error)

	// UpsertDay inserts or updates the row for rec's (employee, date).
	UpsertDay(ctx context.Context, rec WorkRecord) error

	// ClearSpecialNotes blanks the month's special notes before a save
	// rewrites them onto the first day's row.
	ClearSpecialNotes(ctx context.Context, employeeID int64, year, month int) error
}
