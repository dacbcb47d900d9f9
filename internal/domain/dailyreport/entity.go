package dailyreport

import "time"

// DailyReport is an employee's free-text report for a single day.
type DailyReport struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	Date          string  `json:"date"`
	WorkSummary   *string `json:"work_summary"`
	Problems      *string `json:"problems"`
	Challenges    *string `json:"challenges"`
	TomorrowTasks *string `json:"tomorrow_tasks"`
	Thoughts      *string `json:"thoughts"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
