package worktime

import (
	"time"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
)

const day = 24 * time.Hour

// Calculator derives daily and monthly labor metrics from raw timesheet rows.
// It is a pure computation over its inputs and is safe for concurrent use.
type Calculator struct {
	policy worktime.WorkPolicy
}

func NewCalculator(policy worktime.WorkPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// lateNightOverlap computes how much of the work interval [start, end) falls
// inside the late-night band. A shift whose end is numerically before its
// start crosses midnight; extending the timeline by 24h and checking both
// today's and tomorrow's band covers that case without branching on it.
func (c *Calculator) lateNightOverlap(start, end time.Duration) time.Duration {
	if end < start {
		end += day
	}

	windows := [][2]time.Duration{
		{0, c.policy.LateNightEnd},
		{c.policy.LateNightStart, day},
		{day, day + c.policy.LateNightEnd},
	}

	var total time.Duration
	for _, w := range windows {
		overlapStart := max(start, w[0])
		overlapEnd := min(end, w[1])
		if overlapEnd > overlapStart {
			total += overlapEnd - overlapStart
		}
	}
	return total
}

// DailySummary classifies one day's work into the seven duration buckets.
// It never fails: malformed time text decodes to zero, and a row with neither
// start nor end time yields an all-zero summary.
func (c *Calculator) DailySummary(rec worktime.WorkDayRecord) worktime.DailySummary {
	start := parsePtr(rec.StartTime)
	end := parsePtr(rec.EndTime)
	breakTime := parsePtr(rec.BreakTime)
	nightBreak := parsePtr(rec.NightBreakTime)

	if start == 0 && end == 0 {
		return zeroSummary()
	}

	var totalSpan time.Duration
	if end < start {
		totalSpan = (day - start) + end
	} else {
		totalSpan = end - start
	}

	actualWork := totalSpan - breakTime - nightBreak
	if actualWork < 0 {
		actualWork = 0
	}

	lateNight := c.lateNightOverlap(start, end) - nightBreak
	if lateNight < 0 {
		lateNight = 0
	}

	var scheduled, inner, outer, weekdayLateNight, holidayWork, holidayLateNight time.Duration

	isHoliday := rec.HolidayType != worktime.HolidayNone || rec.IsCalendarHoliday
	if isHoliday {
		holidayWork = actualWork
		holidayLateNight = lateNight
	} else {
		scheduled = min(actualWork, c.policy.StandardDailyWork)
		overtime := actualWork - scheduled
		inner = min(overtime, c.policy.InnerOvertimeCap())
		outer = overtime - inner
		weekdayLateNight = lateNight
	}

	return worktime.DailySummary{
		WorkingHours:           FormatClock(actualWork),
		ScheduledWork:          FormatClock(scheduled),
		StatutoryInnerOvertime: FormatClock(inner),
		StatutoryOuterOvertime: FormatClock(outer),
		LateNightWork:          FormatClock(weekdayLateNight),
		HolidayWork:            FormatClock(holidayWork),
		LateNightHolidayWork:   FormatClock(holidayLateNight),
	}
}

// MonthlySummary folds a month of day entries into duration totals and day
// counts. The fold is associative with no ordering dependency between days.
func (c *Calculator) MonthlySummary(days []worktime.DayEntry) worktime.MonthlySummary {
	var summary worktime.MonthlySummary
	var totals struct {
		working, scheduled, inner, outer, lateNight, holiday, holidayLateNight time.Duration
	}

	for _, entry := range days {
		workingHours := ParseClock(entry.Summary.WorkingHours)
		holidayWork := ParseClock(entry.Summary.HolidayWork)

		totals.working += workingHours
		totals.scheduled += ParseClock(entry.Summary.ScheduledWork)
		totals.inner += ParseClock(entry.Summary.StatutoryInnerOvertime)
		totals.outer += ParseClock(entry.Summary.StatutoryOuterOvertime)
		totals.lateNight += ParseClock(entry.Summary.LateNightWork)
		totals.holiday += holidayWork
		totals.holidayLateNight += ParseClock(entry.Summary.LateNightHolidayWork)

		if workingHours > 0 {
			summary.WorkingDays++
		}
		if holidayWork > 0 {
			summary.HolidayWorkDays++
		}

		countAttendance(&summary, entry.AttendanceType)
		countHoliday(&summary, entry.HolidayType)
	}

	summary.TotalWorkingHours = FormatClock(totals.working)
	summary.TotalScheduledWork = FormatClock(totals.scheduled)
	summary.TotalStatutoryInnerOvertime = FormatClock(totals.inner)
	summary.TotalStatutoryOuterOvertime = FormatClock(totals.outer)
	summary.TotalLateNightWork = FormatClock(totals.lateNight)
	summary.TotalHolidayWork = FormatClock(totals.holiday)
	summary.TotalLateNightHolidayWork = FormatClock(totals.holidayLateNight)

	return summary
}

// countAttendance maps an attendance classification to exactly one counter.
// Unknown codes contribute to none; half-day leave variants count 0.5.
func countAttendance(summary *worktime.MonthlySummary, t worktime.AttendanceType) {
	increment := 1.0
	if t.IsHalfDay() {
		increment = 0.5
	}

	switch {
	case t == worktime.AttendanceAbsence:
		summary.AbsentDays += increment
	case t == worktime.AttendancePaidLeave || t.IsHalfDay():
		summary.PaidHolidays += increment
	case t == worktime.AttendanceCompensatoryLeave:
		summary.CompensatoryHolidays += increment
	case t == worktime.AttendanceTransferLeave:
		summary.TransferHolidays += increment
	case t == worktime.AttendanceLate:
		summary.LateDays++
	case t == worktime.AttendanceEarlyLeave:
		summary.EarlyLeaveDays++
	case t == worktime.AttendanceFlex:
		summary.FlexDays++
	case t == worktime.AttendanceOffSite:
		summary.OffSiteDays++
	}
}

func countHoliday(summary *worktime.MonthlySummary, t worktime.HolidayType) {
	switch t {
	case worktime.HolidayStatutory:
		summary.StatutoryHolidays++
	case worktime.HolidayScheduled:
		summary.ScheduledHolidays++
	case worktime.HolidaySpecial:
		summary.SpecialHolidays++
	}
}

func parsePtr(s *string) time.Duration {
	if s == nil {
		return 0
	}
	return ParseClock(*s)
}

func zeroSummary() worktime.DailySummary {
	return worktime.DailySummary{
		WorkingHours:           "0:00",
		ScheduledWork:          "0:00",
		StatutoryInnerOvertime: "0:00",
		StatutoryOuterOvertime: "0:00",
		LateNightWork:          "0:00",
		HolidayWork:            "0:00",
		LateNightHolidayWork:   "0:00",
	}
}
