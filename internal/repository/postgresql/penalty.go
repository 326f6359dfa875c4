package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
)

// CreatePenalty implements payroll.PayrollRepository. The penalty and its
// full installment schedule are inserted atomically.
func (r *payrollRepository) CreatePenalty(ctx context.Context, penalty payroll.Penalty, installments []payroll.PenaltyInstallment) (payroll.Penalty, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO penalties (id, employee_id, description, total_amount, installment_count, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at
		`, penalty.ID, penalty.EmployeeID, penalty.Description,
			penalty.TotalAmount, penalty.InstallmentCount, penalty.Status,
		).Scan(&penalty.CreatedAt, &penalty.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create penalty: %w", err)
		}

		for _, inst := range installments {
			if _, err := tx.Exec(ctx, `
				INSERT INTO penalty_installments (id, penalty_id, installment_number, amount, deducted)
				VALUES ($1, $2, $3, $4, FALSE)
			`, inst.ID, inst.PenaltyID, inst.InstallmentNumber, inst.Amount); err != nil {
				return fmt.Errorf("failed to create penalty installment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.Penalty{}, err
	}
	return penalty, nil
}

func (r *payrollRepository) GetPenaltyByID(ctx context.Context, id string) (payroll.Penalty, []payroll.PenaltyInstallment, error) {
	q := GetQuerier(ctx, r.db)

	var penalty payroll.Penalty
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, description, total_amount, installment_count, status, created_at, updated_at
		FROM penalties
		WHERE id = $1
	`, id).Scan(
		&penalty.ID, &penalty.EmployeeID, &penalty.Description,
		&penalty.TotalAmount, &penalty.InstallmentCount, &penalty.Status,
		&penalty.CreatedAt, &penalty.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Penalty{}, nil, payroll.ErrPenaltyNotFound
		}
		return payroll.Penalty{}, nil, fmt.Errorf("failed to get penalty by ID: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT i.id, i.penalty_id, i.installment_number, i.amount, i.deducted, i.deducted_by_run_id, p.description
		FROM penalty_installments i
		JOIN penalties p ON p.id = i.penalty_id
		WHERE i.penalty_id = $1
		ORDER BY i.installment_number
	`, id)
	if err != nil {
		return payroll.Penalty{}, nil, fmt.Errorf("failed to list penalty installments: %w", err)
	}
	defer rows.Close()

	var installments []payroll.PenaltyInstallment
	for rows.Next() {
		var inst payroll.PenaltyInstallment
		if err := rows.Scan(
			&inst.ID, &inst.PenaltyID, &inst.InstallmentNumber, &inst.Amount,
			&inst.Deducted, &inst.DeductedByRunID, &inst.PenaltyDescription,
		); err != nil {
			return payroll.Penalty{}, nil, fmt.Errorf("failed to scan penalty installment: %w", err)
		}
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return payroll.Penalty{}, nil, fmt.Errorf("failed to iterate penalty installments: %w", err)
	}

	return penalty, installments, nil
}

func (r *payrollRepository) CancelPenalty(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE penalties
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel penalty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM penalties WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check penalty: %w", err)
		}
		if exists {
			return payroll.ErrPenaltyNotActive
		}
		return payroll.ErrPenaltyNotFound
	}
	return nil
}

// NextDueInstallments implements payroll.PayrollRepository: per employee,
// the lowest-numbered undeducted installment of each active penalty.
func (r *payrollRepository) NextDueInstallments(ctx context.Context, employeeIDs []string) (map[string][]payroll.PenaltyInstallment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (p.employee_id, p.id)
			i.id, i.penalty_id, i.installment_number, i.amount, i.deducted, i.deducted_by_run_id,
			p.description, p.employee_id
		FROM penalty_installments i
		JOIN penalties p ON p.id = i.penalty_id
		WHERE p.status = 'ACTIVE'
		  AND NOT i.deducted
		  AND ($1::text[] IS NULL OR p.employee_id = ANY($1::text[]))
		ORDER BY p.employee_id, p.id, i.installment_number
	`

	var filter []string
	if len(employeeIDs) > 0 {
		filter = employeeIDs
	}

	rows, err := q.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list due installments: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]payroll.PenaltyInstallment)
	for rows.Next() {
		var inst payroll.PenaltyInstallment
		var employeeID string
		if err := rows.Scan(
			&inst.ID, &inst.PenaltyID, &inst.InstallmentNumber, &inst.Amount,
			&inst.Deducted, &inst.DeductedByRunID, &inst.PenaltyDescription, &employeeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan due installment: %w", err)
		}
		byEmployee[employeeID] = append(byEmployee[employeeID], inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due installments: %w", err)
	}

	return byEmployee, nil
}
