package holiday

import "time"

// Holiday is one registered public holiday.
type Holiday struct {
	Date time.Time
	Name string
}

// Calendar answers whether a date is a calendar holiday: a weekend day or a
// registered public holiday.
type Calendar struct {
	registered map[string]string // "2006-01-02" -> holiday name
}

func NewCalendar(holidays []Holiday) Calendar {
	registered := make(map[string]string, len(holidays))
	for _, h := range holidays {
		registered[h.Date.Format("2006-01-02")] = h.Name
	}
	return Calendar{registered: registered}
}

func (c Calendar) IsCalendarHoliday(date time.Time) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return true
	}
	_, ok := c.registered[date.Format("2006-01-02")]
	return ok
}

// Names returns the registered holidays as a date -> name map.
func (c Calendar) Names() map[string]string {
	return c.registered
}
