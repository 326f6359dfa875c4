package timekeeping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
)

var manila = time.FixedZone("PST", 8*60*60)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, manila)
	if err != nil {
		t.Fatalf("bad date %s: %v", date, err)
	}
	return d
}

func at(t *testing.T, date, clock string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, manila)
	if err != nil {
		t.Fatalf("bad time %s %s: %v", date, clock, err)
	}
	return d
}

func atPtr(t *testing.T, date, clock string) *time.Time {
	v := at(t, date, clock)
	return &v
}

func baseDay(t *testing.T) attendance.AttendanceDay {
	return attendance.AttendanceDay{
		EmployeeID:     "emp-1",
		Date:           day(t, "2025-03-10"),
		ScheduledStart: at(t, "2025-03-10", "08:00"),
		ScheduledEnd:   at(t, "2025-03-10", "17:00"),
		BreakMinutes:   60,
		DayType:        attendance.DayTypeWorkday,
	}
}

func TestComputeDayMetrics_MissingClocksYieldZero(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	assert.True(t, ComputeDayMetrics(d).Zero(), "no clocks")

	d.ClockIn = atPtr(t, "2025-03-10", "08:00")
	assert.True(t, ComputeDayMetrics(d).Zero(), "clock-in only")

	d.ClockIn = nil
	d.ClockOut = atPtr(t, "2025-03-10", "17:00")
	assert.True(t, ComputeDayMetrics(d).Zero(), "clock-out only")
}

func TestComputeDayMetrics_FullRegularDay(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "08:00")
	d.ClockOut = atPtr(t, "2025-03-10", "17:00")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.LateMinutes)
	assert.Equal(t, 0, m.UndertimeMinutes)
	assert.Equal(t, 480, m.WorkedMinutes) // 540 gross - 60 break
	assert.Equal(t, 0, m.NightDiffMinutes)
}

func TestComputeDayMetrics_ApprovedLateOutScenario(t *testing.T) {
	t.Parallel()

	// 07:50 in, 19:10 out, schedule 08:00-17:00, early-in not approved,
	// late-out approved: start clamps to 08:00, end extends to 19:10.
	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "07:50")
	d.ClockOut = atPtr(t, "2025-03-10", "19:10")
	d.LateOutApproved = true

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.LateMinutes)
	assert.Equal(t, 0, m.UndertimeMinutes)
	assert.Equal(t, 0, m.OvertimeEarlyInMinutes)
	assert.Equal(t, 130, m.OvertimeLateOutMinutes)
	assert.Equal(t, 610, m.WorkedMinutes) // (19:10-08:00) - 60
}

func TestComputeDayMetrics_UnapprovedOvertimeClamped(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "06:30")
	d.ClockOut = atPtr(t, "2025-03-10", "20:00")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.OvertimeEarlyInMinutes)
	assert.Equal(t, 0, m.OvertimeLateOutMinutes)
	// Effective window clamped to the schedule on both sides.
	assert.Equal(t, 480, m.WorkedMinutes)
}

func TestComputeDayMetrics_WorkedBoundedBySchedule(t *testing.T) {
	t.Parallel()

	schedSpan := 540 // 08:00-17:00

	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "05:00")
	d.ClockOut = atPtr(t, "2025-03-10", "23:00")

	m := ComputeDayMetrics(d)
	assert.LessOrEqual(t, m.WorkedMinutes, schedSpan)

	d.EarlyInApproved = true
	d.LateOutApproved = true
	m = ComputeDayMetrics(d)
	assert.Greater(t, m.WorkedMinutes, schedSpan)
}

func TestComputeDayMetrics_LateAndUndertime(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "08:25")
	d.ClockOut = atPtr(t, "2025-03-10", "16:30")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 25, m.LateMinutes)
	assert.Equal(t, 30, m.UndertimeMinutes)

	d.LateInApproved = true
	m = ComputeDayMetrics(d)
	assert.Equal(t, 0, m.LateMinutes, "approved late-in excuses the deduction")
	assert.Equal(t, 30, m.UndertimeMinutes)

	d.EarlyOutApproved = true
	m = ComputeDayMetrics(d)
	assert.Equal(t, 0, m.UndertimeMinutes, "approved early-out excuses undertime")
}

func TestComputeDayMetrics_BreakWindowNotDoubleCounted(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.BreakStart = atPtr(t, "2025-03-10", "12:00")
	d.BreakEnd = atPtr(t, "2025-03-10", "13:00")

	// Arrives after the break window: the hour-long break is not charged
	// on top of the actual lateness.
	d.ClockIn = atPtr(t, "2025-03-10", "14:00")
	d.ClockOut = atPtr(t, "2025-03-10", "17:00")
	m := ComputeDayMetrics(d)
	assert.Equal(t, 300, m.LateMinutes) // 360 raw minus the 60-minute break

	// Arrives mid-break: charged only up to the break start.
	d.ClockIn = atPtr(t, "2025-03-10", "12:30")
	m = ComputeDayMetrics(d)
	assert.Equal(t, 240, m.LateMinutes)
}

func TestComputeDayMetrics_HalfDayKeepsBreak(t *testing.T) {
	t.Parallel()

	// 4.5 hours gross is under the half-day threshold; no break assumed.
	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "08:00")
	d.ClockOut = atPtr(t, "2025-03-10", "12:30")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 270, m.WorkedMinutes)
}

func TestComputeDayMetrics_DayShiftHasNoNightDiff(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ScheduledStart = at(t, "2025-03-10", "09:00")
	d.ScheduledEnd = at(t, "2025-03-10", "18:00")
	d.ClockIn = atPtr(t, "2025-03-10", "09:00")
	d.ClockOut = atPtr(t, "2025-03-10", "18:00")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.NightDiffMinutes)
}

func TestComputeDayMetrics_OvernightShiftNightDiff(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ScheduledStart = at(t, "2025-03-10", "22:00")
	d.ScheduledEnd = at(t, "2025-03-10", "06:00") // end hour < start hour
	d.ClockIn = atPtr(t, "2025-03-10", "22:00")
	d.ClockOut = atPtr(t, "2025-03-10", "06:00") // before noon: next day

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.LateMinutes)
	assert.Equal(t, 0, m.UndertimeMinutes)
	assert.Equal(t, 420, m.WorkedMinutes) // 480 gross - 60 break
	// The whole shift sits inside the 22:00-06:00 statutory window.
	assert.Equal(t, 480, m.NightDiffMinutes)
}

func TestComputeDayMetrics_EveningShiftPartialNightDiff(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ScheduledStart = at(t, "2025-03-10", "14:00")
	d.ScheduledEnd = at(t, "2025-03-10", "23:00")
	d.ClockIn = atPtr(t, "2025-03-10", "14:00")
	d.ClockOut = atPtr(t, "2025-03-10", "23:00")

	m := ComputeDayMetrics(d)
	// Only 22:00-23:00 overlaps the night window.
	assert.Equal(t, 60, m.NightDiffMinutes)
}

func TestComputeDayMetrics_NightDiffExcludesUnapprovedTail(t *testing.T) {
	t.Parallel()

	// Shift ends 21:00; the employee stays until 23:30 without approval.
	// The effective window clamps at 21:00, so no ND accrues.
	d := baseDay(t)
	d.ScheduledStart = at(t, "2025-03-10", "12:00")
	d.ScheduledEnd = at(t, "2025-03-10", "21:00")
	d.ClockIn = atPtr(t, "2025-03-10", "12:00")
	d.ClockOut = atPtr(t, "2025-03-10", "23:30")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 0, m.NightDiffMinutes)

	d.LateOutApproved = true
	m = ComputeDayMetrics(d)
	assert.Equal(t, 90, m.NightDiffMinutes)
}

func TestComputeDayMetrics_MalformedPunchPairClampsToZero(t *testing.T) {
	t.Parallel()

	d := baseDay(t)
	d.ClockIn = atPtr(t, "2025-03-10", "17:00")
	d.ClockOut = atPtr(t, "2025-03-10", "15:00")

	assert.True(t, ComputeDayMetrics(d).Zero())
}

func TestComputeDayMetrics_BreakPresenceReported(t *testing.T) {
	t.Parallel()

	// OvertimeBreakMinutes reports how many pinned-break minutes the punch
	// pair covers. It is informational for break-work review and does not
	// feed the overtime lines: the unpaid break is already subtracted from
	// WorkedMinutes regardless.
	d := baseDay(t)
	d.BreakStart = atPtr(t, "2025-03-10", "12:00")
	d.BreakEnd = atPtr(t, "2025-03-10", "13:00")
	d.ClockIn = atPtr(t, "2025-03-10", "08:00")
	d.ClockOut = atPtr(t, "2025-03-10", "17:00")

	m := ComputeDayMetrics(d)
	assert.Equal(t, 60, m.OvertimeBreakMinutes, "punches spanning the break cover all of it")
	assert.Equal(t, 480, m.WorkedMinutes, "the break stays unpaid either way")

	// Clocking out mid-break covers only part of it.
	d.ClockOut = atPtr(t, "2025-03-10", "12:30")
	assert.Equal(t, 30, ComputeDayMetrics(d).OvertimeBreakMinutes)

	// Without a pinned break window there is nothing to report.
	d.BreakStart = nil
	d.BreakEnd = nil
	d.ClockOut = atPtr(t, "2025-03-10", "17:00")
	assert.Equal(t, 0, ComputeDayMetrics(d).OvertimeBreakMinutes)
}
