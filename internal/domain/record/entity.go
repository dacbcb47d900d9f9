package record

import (
	"time"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
)

// WorkRecord is one stored timesheet row: one employee, one calendar day.
// Time fields hold "H:MM" text exactly as entered; nil means not entered.
type WorkRecord struct {
	ID             int64
	EmployeeID     int64
	Date           time.Time
	StartTime      *string
	EndTime        *string
	BreakTime      *string
	NightBreakTime *string
	AttendanceType worktime.AttendanceType
	HolidayType    worktime.HolidayType
	WorkContent    *string
	// SpecialNotes is month-level free text; by convention it is stored on
	// the first day's row only.
	SpecialNotes *string
}
