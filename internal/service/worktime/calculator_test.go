package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
)

func strPtr(s string) *string {
	return &s
}

func TestCalculator_DailySummary(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(worktime.DefaultPolicy())

	tests := []struct {
		name string
		rec  worktime.WorkDayRecord
		want worktime.DailySummary
	}{
		{
			name: "no times entered yields all zeros",
			rec:  worktime.WorkDayRecord{},
			want: worktime.DailySummary{
				WorkingHours: "0:00", ScheduledWork: "0:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "standard day with break",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("09:00"), EndTime: strPtr("18:00"), BreakTime: strPtr("01:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "8:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "one hour of overtime classifies as outer with equal thresholds",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("09:00"), EndTime: strPtr("19:00"), BreakTime: strPtr("01:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "9:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "1:00",
				LateNightWork: "0:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "evening shift touches the late night band",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("14:00"), EndTime: strPtr("23:00"), BreakTime: strPtr("01:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "8:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "1:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "shift crossing midnight collects both late night windows",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("18:00"), EndTime: strPtr("05:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "11:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "3:00",
				LateNightWork: "7:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "end time past 24 means next calendar day",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("18:00"), EndTime: strPtr("29:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "11:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "3:00",
				LateNightWork: "7:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "night break subtracts from late night work",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("18:00"), EndTime: strPtr("05:00"), NightBreakTime: strPtr("01:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "10:00", ScheduledWork: "8:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "2:00",
				LateNightWork: "6:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "statutory holiday routes everything into holiday buckets",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("09:00"), EndTime: strPtr("18:00"), BreakTime: strPtr("01:00"),
				HolidayType: worktime.HolidayStatutory,
			},
			want: worktime.DailySummary{
				WorkingHours: "8:00", ScheduledWork: "0:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "8:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "weekend flag alone makes the day a holiday",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("20:00"), EndTime: strPtr("23:00"),
				IsCalendarHoliday: true,
			},
			want: worktime.DailySummary{
				WorkingHours: "3:00", ScheduledWork: "0:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "3:00", LateNightHolidayWork: "1:00",
			},
		},
		{
			name: "breaks larger than the span clamp to zero",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("09:00"), EndTime: strPtr("10:00"), BreakTime: strPtr("02:00"),
			},
			want: worktime.DailySummary{
				WorkingHours: "0:00", ScheduledWork: "0:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
		{
			name: "malformed time text degrades to missing data",
			rec: worktime.WorkDayRecord{
				StartTime: strPtr("garbage"), EndTime: strPtr("also bad"),
			},
			want: worktime.DailySummary{
				WorkingHours: "0:00", ScheduledWork: "0:00",
				StatutoryInnerOvertime: "0:00", StatutoryOuterOvertime: "0:00",
				LateNightWork: "0:00", HolidayWork: "0:00", LateNightHolidayWork: "0:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.DailySummary(tt.rec))
		})
	}
}

func TestCalculator_DailySummary_InnerOvertime(t *testing.T) {
	t.Parallel()

	// A policy where the legal threshold exceeds the standard one: overtime
	// fills the inner bucket before spilling into the outer one.
	policy := worktime.DefaultPolicy()
	policy.StandardDailyWork = 7 * time.Hour
	policy.LegalDailyWork = 8 * time.Hour
	calc := NewCalculator(policy)

	got := calc.DailySummary(worktime.WorkDayRecord{
		StartTime: strPtr("09:00"), EndTime: strPtr("19:00"), BreakTime: strPtr("01:00"),
	})

	assert.Equal(t, "9:00", got.WorkingHours)
	assert.Equal(t, "7:00", got.ScheduledWork)
	assert.Equal(t, "1:00", got.StatutoryInnerOvertime)
	assert.Equal(t, "1:00", got.StatutoryOuterOvertime)
}

func TestCalculator_MonthlySummary(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(worktime.DefaultPolicy())

	entryFor := func(rec worktime.WorkDayRecord) worktime.DayEntry {
		return worktime.DayEntry{
			AttendanceType: rec.AttendanceType,
			HolidayType:    rec.HolidayType,
			Summary:        calc.DailySummary(rec),
		}
	}

	entries := []worktime.DayEntry{
		entryFor(worktime.WorkDayRecord{StartTime: strPtr("09:00"), EndTime: strPtr("18:00"), BreakTime: strPtr("01:00")}),
		entryFor(worktime.WorkDayRecord{StartTime: strPtr("09:00"), EndTime: strPtr("19:00"), BreakTime: strPtr("01:00")}),
		entryFor(worktime.WorkDayRecord{AttendanceType: worktime.AttendancePaidLeave}),
	}

	got := calc.MonthlySummary(entries)

	assert.Equal(t, 2, got.WorkingDays)
	assert.Equal(t, 1.0, got.PaidHolidays)
	assert.Equal(t, "17:00", got.TotalWorkingHours)
	assert.Equal(t, "16:00", got.TotalScheduledWork)
	assert.Equal(t, "1:00", got.TotalStatutoryOuterOvertime)
}

func TestCalculator_MonthlySummary_Counters(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(worktime.DefaultPolicy())

	entries := []worktime.DayEntry{
		{AttendanceType: worktime.AttendanceAbsence},
		{AttendanceType: worktime.AttendancePaidLeave},
		{AttendanceType: worktime.AttendanceHalfPaidLeave},
		{AttendanceType: worktime.AttendanceMorningHalfLeave},
		{AttendanceType: worktime.AttendanceCompensatoryLeave},
		{AttendanceType: worktime.AttendanceTransferLeave},
		{AttendanceType: worktime.AttendanceLate},
		{AttendanceType: worktime.AttendanceEarlyLeave},
		{AttendanceType: worktime.AttendanceFlex},
		{AttendanceType: worktime.AttendanceOffSite},
		{AttendanceType: worktime.AttendanceType("mystery-code")},
		{HolidayType: worktime.HolidayStatutory},
		{HolidayType: worktime.HolidayScheduled},
		{HolidayType: worktime.HolidaySpecial},
	}

	got := calc.MonthlySummary(entries)

	assert.Equal(t, 1.0, got.AbsentDays)
	assert.Equal(t, 2.0, got.PaidHolidays, "full day plus two half days")
	assert.Equal(t, 1.0, got.CompensatoryHolidays)
	assert.Equal(t, 1.0, got.TransferHolidays)
	assert.Equal(t, 1, got.LateDays)
	assert.Equal(t, 1, got.EarlyLeaveDays)
	assert.Equal(t, 1, got.FlexDays)
	assert.Equal(t, 1, got.OffSiteDays)
	assert.Equal(t, 1, got.StatutoryHolidays)
	assert.Equal(t, 1, got.ScheduledHolidays)
	assert.Equal(t, 1, got.SpecialHolidays)
	assert.Equal(t, 0, got.WorkingDays)
}

func TestCalculator_MonthlySummary_Empty(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(worktime.DefaultPolicy())
	got := calc.MonthlySummary(nil)

	assert.Equal(t, 0, got.WorkingDays)
	assert.Equal(t, "0:00", got.TotalWorkingHours)
	assert.Equal(t, "0:00", got.TotalLateNightHolidayWork)
}
