package dailyreport

import (
	"github.com/softventure/timesheet-backend-go/internal/pkg/validator"
)

type SaveDailyReportRequest struct {
	EmployeeID    int64   `json:"employee_id"`
	Date          string  `json:"date"`
	WorkSummary   *string `json:"work_summary"`
	Problems      *string `json:"problems"`
	Challenges    *string `json:"challenges"`
	TomorrowTasks *string `json:"tomorrow_tasks"`
	Thoughts      *string `json:"thoughts"`
}

func (r *SaveDailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
