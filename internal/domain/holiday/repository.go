package holiday

import "context"

type HolidayRepository interface {
	// ListByYear returns the registered public holidays of a calendar year.
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
