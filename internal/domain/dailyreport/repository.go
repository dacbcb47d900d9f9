package dailyreport

import (
	"context"
	"errors"
)

var ErrDailyReportNotFound = errors.New("daily report not found")

type DailyReportRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (DailyReport, error)
	Upsert(ctx context.Context, rep DailyReport) (DailyReport, error)
}
