package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for calendar events.
type HolidayRepository interface {
	Create(ctx context.Context, event CalendarEvent) (CalendarEvent, error)
	Delete(ctx context.Context, id string) error

	// MapByRange returns events with date in [from, to) keyed by local
	// date key.
	MapByRange(ctx context.Context, from, to time.Time) (map[string]CalendarEvent, error)
}
