package attendance

import (
	"github.com/suweldo/suweldo-backend-go/internal/pkg/validator"
)

// UpsertAttendanceRequest covers manual entry and correction of one
// employee-day. Times are strings at the boundary; the handler layer keeps
// entities free of wire formats.
type UpsertAttendanceRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	ClockIn          *string `json:"clock_in"`
	ClockOut         *string `json:"clock_out"`
	ScheduledStart   string  `json:"scheduled_start"`
	ScheduledEnd     string  `json:"scheduled_end"`
	BreakMinutes     *int    `json:"break_minutes"`
	IsOvernight      bool    `json:"is_overnight"`
	EarlyInApproved  bool    `json:"early_in_approved"`
	LateOutApproved  bool    `json:"late_out_approved"`
	LateInApproved   bool    `json:"late_in_approved"`
	EarlyOutApproved bool    `json:"early_out_approved"`
	DayType          string  `json:"day_type"`
	LeaveID          *string `json:"leave_id"`
	LeaveIsPaid      bool    `json:"leave_is_paid"`
	Remarks          *string `json:"remarks"`
}

func (r UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidClockTime(r.ScheduledStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "scheduled_start", Message: "must be HH:MM"})
	}
	if _, ok := validator.IsValidClockTime(r.ScheduledEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "must be HH:MM"})
	}
	if r.ClockIn != nil {
		if _, ok := validator.IsValidClockTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be HH:MM"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := validator.IsValidClockTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be HH:MM"})
		}
	}
	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must not be negative"})
	}
	switch DayType(r.DayType) {
	case DayTypeWorkday, DayTypeRestDay, DayTypeRegularHoliday, DayTypeSpecialHoliday, DayTypeSpecialWorking:
	default:
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "unknown day type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the wire shape for one attendance day.
type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	ClockIn          *string `json:"clock_in"`
	ClockOut         *string `json:"clock_out"`
	ScheduledStart   string  `json:"scheduled_start"`
	ScheduledEnd     string  `json:"scheduled_end"`
	BreakMinutes     int     `json:"break_minutes"`
	IsOvernight      bool    `json:"is_overnight"`
	EarlyInApproved  bool    `json:"early_in_approved"`
	LateOutApproved  bool    `json:"late_out_approved"`
	LateInApproved   bool    `json:"late_in_approved"`
	EarlyOutApproved bool    `json:"early_out_approved"`
	DayType          string  `json:"day_type"`
	LeaveID          *string `json:"leave_id"`
	LeaveIsPaid      bool    `json:"leave_is_paid"`
	Remarks          *string `json:"remarks"`
}
