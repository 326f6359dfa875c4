package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance days.
type AttendanceRepository interface {
	Create(ctx context.Context, day AttendanceDay) (AttendanceDay, error)
	Update(ctx context.Context, day AttendanceDay) error
	GetByID(ctx context.Context, id string) (AttendanceDay, error)
	Delete(ctx context.Context, id string) error

	// ListByEmployeeRange returns the employee's days with date in
	// [from, to), ordered by date ascending.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error)

	// ListByRange returns all days in [from, to) grouped per employee,
	// optionally restricted to the given employee IDs.
	ListByRange(ctx context.Context, from, to time.Time, employeeIDs []string) (map[string][]AttendanceDay, error)
}
