package schedule

import (
	"context"
	"time"
)

// BusyPeriod is an occupied range pulled from the calendar for one day.
// It has no identity beyond its bounds and is recomputed per query.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// CalendarProvider is the calendar capability consumed by the core.
type CalendarProvider interface {
	// ListBusy returns the periods of all events intersecting [from, to].
	ListBusy(ctx context.Context, from, to time.Time) ([]BusyPeriod, error)
	// InsertEvent creates an event and returns its provider-side id.
	InsertEvent(ctx context.Context, ev Event) (string, error)
}

// AvailableIntervals returns the catalog subset that overlaps none of the
// day's busy periods. The result does not depend on busy-period ordering or
// duplicates: the overlap test is idempotent per interval.
func AvailableIntervals(catalog Catalog, date time.Time, busy []BusyPeriod) (Catalog, error) {
	free := Catalog{}
	for _, iv := range catalog {
		start, end, err := iv.Bounds(date)
		if err != nil {
			return nil, err
		}
		taken := false
		for _, b := range busy {
			if Overlaps(start, end, b.Start, b.End) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, iv)
		}
	}
	return free, nil
}
