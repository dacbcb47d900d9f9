package worktime

// AttendanceType is the closed set of day classifications an employee can pick.
// The zero value means no classification was entered.
type AttendanceType string

const (
	AttendanceNone               AttendanceType = ""
	AttendanceAbsence            AttendanceType = "absence"
	AttendancePaidLeave          AttendanceType = "paid-leave"
	AttendanceHalfDayLeave       AttendanceType = "half-day-leave"
	AttendanceHalfPaidLeave      AttendanceType = "half-paid-leave"
	AttendanceMorningHalfLeave   AttendanceType = "am-half-leave"
	AttendanceAfternoonHalfLeave AttendanceType = "pm-half-leave"
	AttendanceCompensatoryLeave  AttendanceType = "compensatory-leave"
	AttendanceTransferLeave      AttendanceType = "transfer-leave"
	AttendanceLate               AttendanceType = "late"
	AttendanceEarlyLeave         AttendanceType = "early-leave"
	AttendanceFlex               AttendanceType = "flex"
	AttendanceOffSite            AttendanceType = "off-site"
)

// IsHalfDay reports whether the type counts as half a day of paid leave.
func (t AttendanceType) IsHalfDay() bool {
	switch t {
	case AttendanceHalfDayLeave, AttendanceHalfPaidLeave, AttendanceMorningHalfLeave, AttendanceAfternoonHalfLeave:
		return true
	}
	return false
}

// Known reports whether the type is one of the recognized classifications.
// Unknown codes are kept on the record but contribute to no monthly counter.
func (t AttendanceType) Known() bool {
	switch t {
	case AttendanceAbsence, AttendancePaidLeave, AttendanceHalfDayLeave, AttendanceHalfPaidLeave,
		AttendanceMorningHalfLeave, AttendanceAfternoonHalfLeave, AttendanceCompensatoryLeave,
		AttendanceTransferLeave, AttendanceLate, AttendanceEarlyLeave, AttendanceFlex, AttendanceOffSite:
		return true
	}
	return false
}

// HolidayType classifies why a day is a holiday for the employee.
// The zero value means the day carries no holiday designation.
type HolidayType string

const (
	HolidayNone      HolidayType = ""
	HolidayStatutory HolidayType = "statutory"
	HolidayScheduled HolidayType = "scheduled"
	HolidaySpecial   HolidayType = "special"
)

func (t HolidayType) Known() bool {
	switch t {
	case HolidayStatutory, HolidayScheduled, HolidaySpecial:
		return true
	}
	return false
}
