package timekeeping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

func TestResolveDayType_PlainWorkday(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	// 2025-03-10 is a Monday.
	res := ResolveDayType(day(t, "2025-03-10"), nil, nil, rules)

	assert.Equal(t, attendance.DayTypeWorkday, res.DayType)
	assert.Nil(t, res.HolidayID)
	assert.True(t, res.Multiplier.Equal(decimal.NewFromInt(1)))
}

func TestResolveDayType_RestDayFromDefaultSet(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	restDays := map[time.Weekday]bool{time.Sunday: true}

	res := ResolveDayType(day(t, "2025-03-09"), restDays, nil, rules)
	assert.Equal(t, attendance.DayTypeRestDay, res.DayType)
	assert.True(t, res.Multiplier.Equal(rules.RestDayMultiplier))

	res = ResolveDayType(day(t, "2025-03-10"), restDays, nil, rules)
	assert.Equal(t, attendance.DayTypeWorkday, res.DayType)
}

func TestResolveDayType_HolidayBeatsRestDay(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	restDays := map[time.Weekday]bool{time.Sunday: true}
	events := map[string]holiday.CalendarEvent{
		"2025-06-01": {
			ID:   "hol-1",
			Name: "Independence Day (moved)",
			Date: day(t, "2025-06-01"),
			Type: holiday.TypeRegular,
		},
	}

	// 2025-06-01 is a Sunday; the holiday classification wins.
	res := ResolveDayType(day(t, "2025-06-01"), restDays, events, rules)
	assert.Equal(t, attendance.DayTypeRegularHoliday, res.DayType)
	require.NotNil(t, res.HolidayID)
	assert.Equal(t, "hol-1", *res.HolidayID)
	assert.True(t, res.Multiplier.Equal(rules.RegularHolidayMultiplier))
}

func TestResolveDayType_EventMultiplierOverride(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	events := map[string]holiday.CalendarEvent{
		"2025-12-08": {
			ID:         "hol-2",
			Name:       "Feast of the Immaculate Conception",
			Date:       day(t, "2025-12-08"),
			Type:       holiday.TypeSpecialNonWorking,
			Multiplier: decimal.RequireFromString("1.5"),
		},
	}

	res := ResolveDayType(day(t, "2025-12-08"), nil, events, rules)
	assert.Equal(t, attendance.DayTypeSpecialHoliday, res.DayType)
	assert.True(t, res.Multiplier.Equal(decimal.RequireFromString("1.5")))
}

func TestResolveDayType_SpecialWorkingIsPlainRate(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	events := map[string]holiday.CalendarEvent{
		"2025-11-02": {
			ID:   "hol-3",
			Name: "All Souls' Day",
			Date: day(t, "2025-11-02"),
			Type: holiday.TypeSpecialWorking,
		},
	}

	res := ResolveDayType(day(t, "2025-11-02"), nil, events, rules)
	assert.Equal(t, attendance.DayTypeSpecialWorking, res.DayType)
	assert.True(t, res.Multiplier.Equal(decimal.NewFromInt(1)))
}

func TestResolveDayType_LookupUsesLocalDateKey(t *testing.T) {
	t.Parallel()

	rules := statutory.DefaultRuleset()
	date := day(t, "2025-04-09")
	events := map[string]holiday.CalendarEvent{
		holiday.DateKey(date): {
			ID:   "hol-4",
			Name: "Araw ng Kagitingan",
			Date: date,
			Type: holiday.TypeRegular,
		},
	}

	// The same instant rendered in UTC falls on the previous calendar day;
	// resolution must still match via the local date key.
	res := ResolveDayType(date, nil, events, rules)
	assert.Equal(t, attendance.DayTypeRegularHoliday, res.DayType)
}
