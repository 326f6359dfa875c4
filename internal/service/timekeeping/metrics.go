package timekeeping

import (
	"time"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
)

// defaultBreakMinutes applies when a shift template carries no explicit
// break length.
const defaultBreakMinutes = 60

// halfDayThresholdMinutes: below this gross worked time no break is
// assumed, so nothing is subtracted.
const halfDayThresholdMinutes = 300

// DayMetrics are the minute counts derived from one attendance day. All
// values are non-negative; they are recomputed from raw clocks on every
// payroll run and never persisted.
type DayMetrics struct {
	LateMinutes            int
	UndertimeMinutes       int
	OvertimeEarlyInMinutes int
	OvertimeLateOutMinutes int
	OvertimeBreakMinutes   int
	WorkedMinutes          int
	NightDiffMinutes       int
}

// Zero reports whether the day contributed no derived time at all.
func (m DayMetrics) Zero() bool {
	return m == DayMetrics{}
}

// ComputeDayMetrics derives late, undertime, overtime, worked and
// night-differential minutes for one employee-day.
//
// A day without both clock punches yields all-zero metrics; whether the
// day is an absence, a leave or a rest day is the engine's concern.
// The worked window is bounded by the schedule unless the matching
// approval flag lifts the bound: unapproved early clock-ins clamp to the
// scheduled start, unapproved late clock-outs clamp to the scheduled end.
func ComputeDayMetrics(day attendance.AttendanceDay) DayMetrics {
	if !day.HasClocks() {
		return DayMetrics{}
	}

	schedStart := day.ScheduledStart
	schedEnd := day.ScheduledEnd
	overnight := day.IsOvernight || schedEnd.Hour() < schedStart.Hour()
	if overnight && !schedEnd.After(schedStart) {
		schedEnd = schedEnd.Add(24 * time.Hour)
	}

	clockIn := *day.ClockIn
	clockOut := *day.ClockOut
	// Overnight clock-outs before local noon belong to the following day.
	if overnight && clockOut.Hour() < 12 && clockOut.Before(clockIn) {
		clockOut = clockOut.Add(24 * time.Hour)
	}
	if clockOut.Before(clockIn) {
		// Malformed punch pair; attendance data is externally sourced, so
		// clamp instead of failing the whole run.
		return DayMetrics{}
	}

	win := canonicalWindow(clockIn, clockOut, schedStart, schedEnd, day.BreakStart, day.BreakEnd)

	m := DayMetrics{
		LateMinutes:      win.late,
		UndertimeMinutes: win.undertime,
	}
	if day.LateInApproved {
		m.LateMinutes = 0
	}
	if day.EarlyOutApproved {
		m.UndertimeMinutes = 0
	}

	// Work outside the schedule is paid overtime only when approved.
	if day.EarlyInApproved {
		m.OvertimeEarlyInMinutes = win.earlyIn
	}
	if day.LateOutApproved {
		m.OvertimeLateOutMinutes = win.lateOut
	}
	m.OvertimeBreakMinutes = win.workedBreak

	effStart := clockIn
	if clockIn.Before(schedStart) && !day.EarlyInApproved {
		effStart = schedStart
	}
	effEnd := clockOut
	if clockOut.After(schedEnd) && !day.LateOutApproved {
		effEnd = schedEnd
	}
	if effEnd.After(effStart) {
		gross := wholeMinutes(effEnd.Sub(effStart))
		worked := gross
		if gross > halfDayThresholdMinutes {
			breakMin := day.BreakMinutes
			if breakMin <= 0 {
				breakMin = defaultBreakMinutes
			}
			worked -= breakMin
		}
		if worked < 0 {
			worked = 0
		}
		m.WorkedMinutes = worked

		// Statutory night window: 22:00 through 06:00 the next day,
		// overlapped against the effective (approval-bounded) window so
		// excused or unapproved time never earns the premium.
		ndStart := day.Date.Add(22 * time.Hour)
		ndEnd := day.Date.Add(30 * time.Hour)
		m.NightDiffMinutes = overlapMinutes(effStart, effEnd, ndStart, ndEnd)
	}

	return m
}

type windowMinutes struct {
	late        int
	undertime   int
	earlyIn     int
	lateOut     int
	workedBreak int
}

// canonicalWindow compares the punch pair against the schedule window.
// When the shift pins its break to a concrete window, a late arrival that
// lands inside or beyond the break is not additionally charged for the
// break the employee never held; the symmetric rule applies to early
// departures.
func canonicalWindow(clockIn, clockOut, schedStart, schedEnd time.Time, breakStart, breakEnd *time.Time) windowMinutes {
	var w windowMinutes

	if clockIn.After(schedStart) {
		w.late = wholeMinutes(clockIn.Sub(schedStart))
		if breakStart != nil && breakEnd != nil && breakEnd.After(*breakStart) {
			breakLen := wholeMinutes(breakEnd.Sub(*breakStart))
			switch {
			case !clockIn.Before(*breakEnd):
				w.late -= breakLen
			case clockIn.After(*breakStart):
				w.late = wholeMinutes(breakStart.Sub(schedStart))
			}
		}
	} else {
		w.earlyIn = wholeMinutes(schedStart.Sub(clockIn))
	}

	if clockOut.Before(schedEnd) {
		w.undertime = wholeMinutes(schedEnd.Sub(clockOut))
		if breakStart != nil && breakEnd != nil && breakEnd.After(*breakStart) {
			breakLen := wholeMinutes(breakEnd.Sub(*breakStart))
			switch {
			case !clockOut.After(*breakStart):
				w.undertime -= breakLen
			case clockOut.Before(*breakEnd):
				w.undertime = wholeMinutes(schedEnd.Sub(*breakEnd))
			}
		}
	} else {
		w.lateOut = wholeMinutes(clockOut.Sub(schedEnd))
	}

	if breakStart != nil && breakEnd != nil {
		w.workedBreak = overlapMinutes(clockIn, clockOut, *breakStart, *breakEnd)
	}

	if w.late < 0 {
		w.late = 0
	}
	if w.undertime < 0 {
		w.undertime = 0
	}
	return w
}

func wholeMinutes(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// overlapMinutes is max(0, min(endA, endB) - max(startA, startB)).
func overlapMinutes(startA, endA, startB, endB time.Time) int {
	start := startA
	if startB.After(start) {
		start = startB
	}
	end := endA
	if endB.Before(end) {
		end = endB
	}
	if !end.After(start) {
		return 0
	}
	return wholeMinutes(end.Sub(start))
}
