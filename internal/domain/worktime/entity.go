package worktime

// WorkDayRecord is one calendar day of raw timesheet input for one employee.
// Time fields are "H:MM" clock strings; nil means the field was not entered.
type WorkDayRecord struct {
	StartTime         *string
	EndTime           *string
	BreakTime         *string
	NightBreakTime    *string
	HolidayType       HolidayType
	IsCalendarHoliday bool
	AttendanceType    AttendanceType
}

// DailySummary is the classified result for one day. Every field is an
// encoded "H:MM" duration.
type DailySummary struct {
	WorkingHours           string `json:"working_hours"`
	ScheduledWork          string `json:"scheduled_work"`
	StatutoryInnerOvertime string `json:"statutory_inner_overtime"`
	StatutoryOuterOvertime string `json:"statutory_outer_overtime"`
	LateNightWork          string `json:"late_night_work"`
	HolidayWork            string `json:"holiday_work"`
	LateNightHolidayWork   string `json:"late_night_holiday_work"`
}

// DayEntry is one day's input to the monthly aggregation: the computed daily
// summary plus the classifications the aggregator counts by.
type DayEntry struct {
	AttendanceType AttendanceType
	HolidayType    HolidayType
	Summary        DailySummary
}

// MonthlySummary is the month-level rollup. Leave counters are float64 because
// half-day leave variants accumulate in 0.5 increments.
type MonthlySummary struct {
	WorkingDays          int     `json:"working_days"`
	HolidayWorkDays      int     `json:"holiday_work_days"`
	AbsentDays           float64 `json:"absent_days"`
	PaidHolidays         float64 `json:"paid_holidays"`
	CompensatoryHolidays float64 `json:"compensatory_holidays"`
	TransferHolidays     float64 `json:"transfer_holidays"`
	LateDays             int     `json:"late_days"`
	EarlyLeaveDays       int     `json:"early_leave_days"`
	FlexDays             int     `json:"flex_days"`
	OffSiteDays          int     `json:"off_site_days"`
	StatutoryHolidays    int     `json:"statutory_holidays"`
	ScheduledHolidays    int     `json:"scheduled_holidays"`
	SpecialHolidays      int     `json:"special_holidays"`

	TotalWorkingHours           string `json:"total_working_hours"`
	TotalScheduledWork          string `json:"total_scheduled_work"`
	TotalStatutoryInnerOvertime string `json:"total_statutory_inner_overtime"`
	TotalStatutoryOuterOvertime string `json:"total_statutory_outer_overtime"`
	TotalLateNightWork          string `json:"total_late_night_work"`
	TotalHolidayWork            string `json:"total_holiday_work"`
	TotalLateNightHolidayWork   string `json:"total_late_night_holiday_work"`
}
