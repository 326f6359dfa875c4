package timekeeping

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

// DayTypeResolution is the calendar classification of one date. Ephemeral:
// computed per run, never stored.
type DayTypeResolution struct {
	DayType     attendance.DayType
	HolidayID   *string
	HolidayName *string
	Multiplier  decimal.Decimal
}

// ResolveDayType classifies a date from the holiday calendar and the
// employee's default rest-day set. Holidays win regardless of weekday.
//
// The rest-day/workday fallback only drives holiday detection here; for
// premium purposes the engine trusts the stored AttendanceDay.DayType,
// since individual rest-day schedules can deviate from the default set.
func ResolveDayType(date time.Time, restDays map[time.Weekday]bool, events map[string]holiday.CalendarEvent, rules statutory.Ruleset) DayTypeResolution {
	if event, ok := events[holiday.DateKey(date)]; ok {
		res := DayTypeResolution{
			HolidayID:   &event.ID,
			HolidayName: &event.Name,
			Multiplier:  event.Multiplier,
		}
		switch event.Type {
		case holiday.TypeRegular:
			res.DayType = attendance.DayTypeRegularHoliday
			if res.Multiplier.Sign() <= 0 {
				res.Multiplier = rules.RegularHolidayMultiplier
			}
		case holiday.TypeSpecialWorking:
			res.DayType = attendance.DayTypeSpecialWorking
			if res.Multiplier.Sign() <= 0 {
				res.Multiplier = decimal.NewFromInt(1)
			}
		default:
			res.DayType = attendance.DayTypeSpecialHoliday
			if res.Multiplier.Sign() <= 0 {
				res.Multiplier = rules.SpecialHolidayMultiplier
			}
		}
		return res
	}

	if restDays[date.Weekday()] {
		return DayTypeResolution{
			DayType:    attendance.DayTypeRestDay,
			Multiplier: rules.RestDayMultiplier,
		}
	}

	return DayTypeResolution{
		DayType:    attendance.DayTypeWorkday,
		Multiplier: decimal.NewFromInt(1),
	}
}
