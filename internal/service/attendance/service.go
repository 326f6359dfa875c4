package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
)

// Service manages raw attendance days. It stores punches and schedules
// only; every derived minute count is recomputed by the payroll engine, so
// corrections here never leave stale numbers behind.
type Service struct {
	repo      attendance.AttendanceRepository
	employees employee.EmployeeRepository
	loc       *time.Location
}

func NewService(repo attendance.AttendanceRepository, employees employee.EmployeeRepository, loc *time.Location) *Service {
	return &Service{repo: repo, employees: employees, loc: loc}
}

func (s *Service) Create(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceDay, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceDay{}, err
	}
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceDay{}, err
	}

	day, err := s.fromRequest(req)
	if err != nil {
		return attendance.AttendanceDay{}, err
	}
	day.ID = uuid.New().String()

	return s.repo.Create(ctx, day)
}

func (s *Service) Update(ctx context.Context, id string, req attendance.UpsertAttendanceRequest) (attendance.AttendanceDay, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceDay{}, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceDay{}, err
	}

	day, err := s.fromRequest(req)
	if err != nil {
		return attendance.AttendanceDay{}, err
	}
	// Identity fields are immutable on update.
	day.ID = existing.ID
	day.EmployeeID = existing.EmployeeID
	day.Date = existing.Date

	if err := s.repo.Update(ctx, day); err != nil {
		return attendance.AttendanceDay{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (attendance.AttendanceDay, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListByEmployeeRange returns the employee's days with date in [from, to],
// both bounds as local calendar dates.
func (s *Service) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.ListByEmployeeRange(ctx, employeeID, from, to.AddDate(0, 0, 1))
}

// fromRequest builds the entity, anchoring every clock string to the local
// working date. Overnight clock-outs stay anchored to the same date; the
// metrics derivation rolls them forward.
func (s *Service) fromRequest(req attendance.UpsertAttendanceRequest) (attendance.AttendanceDay, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	if err != nil {
		return attendance.AttendanceDay{}, attendance.ErrDateRequired
	}

	day := attendance.AttendanceDay{
		EmployeeID:       req.EmployeeID,
		Date:             date,
		ScheduledStart:   anchorClock(date, req.ScheduledStart),
		ScheduledEnd:     anchorClock(date, req.ScheduledEnd),
		IsOvernight:      req.IsOvernight,
		EarlyInApproved:  req.EarlyInApproved,
		LateOutApproved:  req.LateOutApproved,
		LateInApproved:   req.LateInApproved,
		EarlyOutApproved: req.EarlyOutApproved,
		DayType:          attendance.DayType(req.DayType),
		LeaveID:          req.LeaveID,
		LeaveIsPaid:      req.LeaveIsPaid,
		Remarks:          req.Remarks,
	}
	if req.BreakMinutes != nil {
		day.BreakMinutes = *req.BreakMinutes
	}
	if req.ClockIn != nil {
		in := anchorClock(date, *req.ClockIn)
		day.ClockIn = &in
	}
	if req.ClockOut != nil {
		out := anchorClock(date, *req.ClockOut)
		day.ClockOut = &out
	}

	return day, nil
}

// anchorClock combines a validated HH:MM string with the working date.
func anchorClock(date time.Time, hm string) time.Time {
	t, err := time.Parse("15:04:05", hm)
	if err != nil {
		t, _ = time.Parse("15:04", hm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, date.Location())
}

// ToResponse converts an entity to its wire shape.
func ToResponse(day attendance.AttendanceDay) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               day.ID,
		EmployeeID:       day.EmployeeID,
		Date:             day.Date.Format("2006-01-02"),
		ScheduledStart:   day.ScheduledStart.Format("15:04"),
		ScheduledEnd:     day.ScheduledEnd.Format("15:04"),
		BreakMinutes:     day.BreakMinutes,
		IsOvernight:      day.IsOvernight,
		EarlyInApproved:  day.EarlyInApproved,
		LateOutApproved:  day.LateOutApproved,
		LateInApproved:   day.LateInApproved,
		EarlyOutApproved: day.EarlyOutApproved,
		DayType:          string(day.DayType),
		LeaveID:          day.LeaveID,
		LeaveIsPaid:      day.LeaveIsPaid,
		Remarks:          day.Remarks,
	}
	if day.ClockIn != nil {
		v := day.ClockIn.Format("15:04")
		resp.ClockIn = &v
	}
	if day.ClockOut != nil {
		v := day.ClockOut.Format("15:04")
		resp.ClockOut = &v
	}
	return resp
}
