package holiday

import (
	"time"

	"github.com/shopspring/decimal"
)

// HolidayType mirrors the Labor Code distinction: regular holidays carry a
// 200% worked multiplier and are paid even when unworked; special
// non-working days follow no-work-no-pay at 130% when worked.
type HolidayType string

const (
	TypeRegular           HolidayType = "REGULAR"
	TypeSpecialNonWorking HolidayType = "SPECIAL_NON_WORKING"
	TypeSpecialWorking    HolidayType = "SPECIAL_WORKING"
)

// CalendarEvent is one company calendar holiday.
type CalendarEvent struct {
	ID   string
	Name string

	// Date is midnight in the site timezone.
	Date time.Time

	Type HolidayType

	// Multiplier for work performed on the day. Zero means "use the
	// ruleset default for the holiday type".
	Multiplier decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateKey is the local calendar-date lookup key. Both the event map and
// the resolver must key on local date components; keying one side on UTC
// shifts holidays across the midnight boundary.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
