package record

import (
	"context"

	"github.com/softventure/timesheet-backend-go/internal/domain/report"
)

// WorkRecordService reads and writes a month of timesheet rows. Writes are
// accepted only while the month's report is editable by the acting employee.
type WorkRecordService interface {
	GetMonth(ctx context.Context, employeeID int64, year, month int) (MonthRecordsResponse, error)
	SaveMonth(ctx context.Context, req SaveMonthRequest, actor report.Actor) error
}
