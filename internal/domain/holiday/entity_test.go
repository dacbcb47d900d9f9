package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendar_IsCalendarHoliday(t *testing.T) {
	t.Parallel()

	cal := NewCalendar([]Holiday{
		{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Name: "New Year's Day"},
	})

	assert.True(t, cal.IsCalendarHoliday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), "registered holiday")
	assert.True(t, cal.IsCalendarHoliday(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)), "Saturday")
	assert.True(t, cal.IsCalendarHoliday(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)), "Sunday")
	assert.False(t, cal.IsCalendarHoliday(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)), "ordinary Monday")
}
