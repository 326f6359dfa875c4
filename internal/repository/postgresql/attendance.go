package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, clock_in, clock_out,
	scheduled_start, scheduled_end, break_minutes, break_start, break_end,
	is_overnight, early_in_approved, late_out_approved, late_in_approved, early_out_approved,
	day_type, leave_id, leave_is_paid, remarks, created_at, updated_at
`

func scanAttendanceDay(row pgx.Row) (attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	err := row.Scan(
		&day.ID, &day.EmployeeID, &day.Date, &day.ClockIn, &day.ClockOut,
		&day.ScheduledStart, &day.ScheduledEnd, &day.BreakMinutes, &day.BreakStart, &day.BreakEnd,
		&day.IsOvernight, &day.EarlyInApproved, &day.LateOutApproved, &day.LateInApproved, &day.EarlyOutApproved,
		&day.DayType, &day.LeaveID, &day.LeaveIsPaid, &day.Remarks, &day.CreatedAt, &day.UpdatedAt,
	)
	return day, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, day attendance.AttendanceDay) (attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (
			id, employee_id, date, clock_in, clock_out,
			scheduled_start, scheduled_end, break_minutes, break_start, break_end,
			is_overnight, early_in_approved, late_out_approved, late_in_approved, early_out_approved,
			day_type, leave_id, leave_is_paid, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.ID, day.EmployeeID, day.Date, day.ClockIn, day.ClockOut,
		day.ScheduledStart, day.ScheduledEnd, day.BreakMinutes, day.BreakStart, day.BreakEnd,
		day.IsOvernight, day.EarlyInApproved, day.LateOutApproved, day.LateInApproved, day.EarlyOutApproved,
		day.DayType, day.LeaveID, day.LeaveIsPaid, day.Remarks,
	).Scan(&day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.AttendanceDay{}, attendance.ErrDuplicateDay
		}
		return attendance.AttendanceDay{}, fmt.Errorf("failed to create attendance day: %w", err)
	}

	return day, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, day attendance.AttendanceDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days SET
			clock_in = $2, clock_out = $3,
			scheduled_start = $4, scheduled_end = $5,
			break_minutes = $6, break_start = $7, break_end = $8,
			is_overnight = $9,
			early_in_approved = $10, late_out_approved = $11,
			late_in_approved = $12, early_out_approved = $13,
			day_type = $14, leave_id = $15, leave_is_paid = $16, remarks = $17,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		day.ID, day.ClockIn, day.ClockOut,
		day.ScheduledStart, day.ScheduledEnd,
		day.BreakMinutes, day.BreakStart, day.BreakEnd,
		day.IsOvernight,
		day.EarlyInApproved, day.LateOutApproved,
		day.LateInApproved, day.EarlyOutApproved,
		day.DayType, day.LeaveID, day.LeaveIsPaid, day.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_days WHERE id = $1`

	day, err := scanAttendanceDay(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceDay{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceDay{}, fmt.Errorf("failed to get attendance day by ID: %w", err)
	}
	return day, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		day, err := scanAttendanceDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance days: %w", err)
	}

	return days, nil
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByRange(ctx context.Context, from, to time.Time, employeeIDs []string) (map[string][]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE date >= $1 AND date < $2
		  AND ($3::text[] IS NULL OR employee_id = ANY($3::text[]))
		ORDER BY employee_id, date
	`

	var filter []string
	if len(employeeIDs) > 0 {
		filter = employeeIDs
	}

	rows, err := q.Query(ctx, query, from, to, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days by range: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]attendance.AttendanceDay)
	for rows.Next() {
		day, err := scanAttendanceDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		byEmployee[day.EmployeeID] = append(byEmployee[day.EmployeeID], day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance days: %w", err)
	}

	return byEmployee, nil
}
