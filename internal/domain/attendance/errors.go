package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance day not found")
	ErrDuplicateDay       = errors.New("attendance day already exists for this employee and date")
	ErrInvalidSchedule    = errors.New("scheduled end must differ from scheduled start")
	ErrClockOutBeforeIn   = errors.New("clock-out is before clock-in")
	ErrUnknownDayType     = errors.New("unknown day type")
	ErrEmployeeIDRequired = errors.New("employee id is required")
	ErrDateRequired       = errors.New("date is required")
)
