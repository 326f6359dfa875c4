package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, status, rest_days, hire_date, regularization_date,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	var restDays []int32
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.Status, &restDays,
		&emp.HireDate, &emp.RegularizationDate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	emp.RestDays = toWeekdays(restDays)
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context, ids []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, status, rest_days, hire_date, regularization_date,
			   created_at, updated_at
		FROM employees
		WHERE status <> 'RESIGNED'
		  AND ($1::text[] IS NULL OR id = ANY($1::text[]))
		ORDER BY id
	`

	var filter []string
	if len(ids) > 0 {
		filter = ids
	}

	rows, err := q.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var restDays []int32
		if err := rows.Scan(
			&emp.ID, &emp.Code, &emp.Name, &emp.Status, &restDays,
			&emp.HireDate, &emp.RegularizationDate,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.RestDays = toWeekdays(restDays)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func toWeekdays(days []int32) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}
