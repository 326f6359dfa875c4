package attendance

import "time"

// DayType classifies a calendar date for pay-rate purposes. The stored
// value on an AttendanceDay comes from import or the shift schedule and is
// independent of the holiday calendar; holiday resolution happens at
// computation time.
type DayType string

const (
	DayTypeWorkday        DayType = "WORKDAY"
	DayTypeRestDay        DayType = "REST_DAY"
	DayTypeRegularHoliday DayType = "REGULAR_HOLIDAY"
	DayTypeSpecialHoliday DayType = "SPECIAL_HOLIDAY"
	DayTypeSpecialWorking DayType = "SPECIAL_WORKING"
)

// AttendanceDay is one employee-day of raw attendance. The payroll engine
// treats it as read-only and re-derives every minute count on each run;
// derived metrics are never persisted, so a corrected clock time can never
// drift from its downstream numbers.
type AttendanceDay struct {
	ID         string
	EmployeeID string

	// Date is the local working date, midnight in the site timezone.
	Date time.Time

	ClockIn  *time.Time
	ClockOut *time.Time

	// Schedule window from the shift template, anchored to Date.
	ScheduledStart time.Time
	ScheduledEnd   time.Time

	// BreakMinutes is the template default; BreakStart/BreakEnd optionally
	// pin the break to a concrete window for late-arrival adjustment.
	BreakMinutes int
	BreakStart   *time.Time
	BreakEnd     *time.Time

	IsOvernight bool

	// Approval flags. EarlyIn/LateOut gate whether work outside the
	// schedule is paid overtime; LateIn/EarlyOut excuse the corresponding
	// deduction.
	EarlyInApproved  bool
	LateOutApproved  bool
	LateInApproved   bool
	EarlyOutApproved bool

	DayType DayType

	LeaveID     *string
	LeaveIsPaid bool

	Remarks *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasClocks reports whether both clock punches are present. Days without a
// full pair contribute no worked time.
func (a AttendanceDay) HasClocks() bool {
	return a.ClockIn != nil && a.ClockOut != nil
}
