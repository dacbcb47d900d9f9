package record

import (
	"fmt"
	"time"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
	"github.com/softventure/timesheet-backend-go/internal/pkg/validator"
)

// DayRecord is one day inside a month save or fetch, keyed by day of month.
type DayRecord struct {
	Day            int                     `json:"day"`
	StartTime      *string                 `json:"start_time"`
	EndTime        *string                 `json:"end_time"`
	BreakTime      *string                 `json:"break_time"`
	NightBreakTime *string                 `json:"night_break_time"`
	AttendanceType worktime.AttendanceType `json:"attendance_type"`
	HolidayType    worktime.HolidayType    `json:"holiday_type"`
	WorkContent    *string                 `json:"work_content"`
}

type SaveMonthRequest struct {
	EmployeeID   int64       `json:"employee_id"`
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	Records      []DayRecord `json:"records"`
	SpecialNotes string      `json:"special_notes"`
}

func (r *SaveMonthRequest) Validate() error {
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

	if r.Records == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "records is required",
		})
	}

	for _, day := range r.Records {
		if day.Day < 1 || day.Day > 31 {
			errs = append(errs, validator.ValidationError{
				Field:   "records",
				Message: fmt.Sprintf("day %d is out of range", day.Day),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthRecordsResponse struct {
	Records      []DayRecord `json:"records"`
	SpecialNotes string      `json:"special_notes"`
}
