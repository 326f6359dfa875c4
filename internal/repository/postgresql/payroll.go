package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== RUNS ==========

const runColumns = `
	id, period_start, period_end, frequency, status,
	total_gross, total_deductions, total_net, employee_count, payslip_count,
	computed_at, released_at, created_at, updated_at
`

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.PeriodStart, &run.PeriodEnd, &run.Frequency, &run.Status,
		&run.TotalGross, &run.TotalDeductions, &run.TotalNet, &run.EmployeeCount, &run.PayslipCount,
		&run.ComputedAt, &run.ReleasedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}

func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (id, period_start, period_end, frequency, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query,
		run.ID, run.PeriodStart, run.PeriodEnd, run.Frequency, run.Status,
	))
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}
	return created, nil
}

func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1`

	run, err := scanRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run by ID: %w", err)
	}
	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context, limit, offset int) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_runs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		ORDER BY period_start DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll runs: %w", err)
	}

	return runs, total, nil
}

// UpdateRunStatus performs a guarded status transition. The WHERE clause on
// the current status makes concurrent transitions lose cleanly instead of
// clobbering each other.
func (r *payrollRepository) UpdateRunStatus(ctx context.Context, id string, from, to payroll.RunStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $3,
			released_at = CASE WHEN $3 = 'RELEASED' THEN NOW() ELSE released_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetRunByID(ctx, id); err != nil {
			return err
		}
		return payroll.ErrRunNotEditable
	}
	return nil
}

// ========== PAYSLIPS ==========

const payslipColumns = `
	id, run_id, employee_id,
	basic_pay, gross_pay, non_statutory_earnings, total_earnings, total_deductions,
	late_undertime_deduction, net_pay,
	sss_ee, sss_er, philhealth_ee, philhealth_er, pagibig_ee, pagibig_er,
	withholding_tax, taxable_income,
	ytd_gross, ytd_taxable, ytd_tax_withheld,
	profile_snapshot, period_start, period_end, created_at
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var slip payroll.Payslip
	var snapshot []byte
	err := row.Scan(
		&slip.ID, &slip.RunID, &slip.EmployeeID,
		&slip.BasicPay, &slip.GrossPay, &slip.NonStatutoryEarnings, &slip.TotalEarnings, &slip.TotalDeductions,
		&slip.LateUndertimeDeduction, &slip.NetPay,
		&slip.SSSEmployee, &slip.SSSEmployer, &slip.PhilHealthEmployee, &slip.PhilHealthEmployer,
		&slip.PagIbigEmployee, &slip.PagIbigEmployer,
		&slip.WithholdingTax, &slip.TaxableIncome,
		&slip.YTD.GrossPay, &slip.YTD.TaxableIncome, &slip.YTD.TaxWithheld,
		&snapshot, &slip.PeriodStart, &slip.PeriodEnd, &slip.CreatedAt,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if err := json.Unmarshal(snapshot, &slip.ProfileSnapshot); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	return slip, nil
}

// ReplaceRunPayslips implements payroll.PayrollRepository. Everything runs
// on the caller's transaction: old payslips and lines go away, consumed
// installments from the previous computation are returned to the pool, the
// fresh set is inserted, and the run row is updated with totals and status.
func (r *payrollRepository) ReplaceRunPayslips(ctx context.Context, tx pgx.Tx, run payroll.PayrollRun, payslips []payroll.Payslip, consumedInstallmentIDs []string) error {
	if _, err := tx.Exec(ctx, `
		UPDATE penalty_installments
		SET deducted = FALSE, deducted_by_run_id = NULL
		WHERE deducted_by_run_id = $1
	`, run.ID); err != nil {
		return fmt.Errorf("failed to release prior installments: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM payslip_lines
		WHERE payslip_id IN (SELECT id FROM payslips WHERE run_id = $1)
	`, run.ID); err != nil {
		return fmt.Errorf("failed to delete prior payslip lines: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payslips WHERE run_id = $1`, run.ID); err != nil {
		return fmt.Errorf("failed to delete prior payslips: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE payroll_runs
		SET status = $2, total_gross = $3, total_deductions = $4, total_net = $5,
			employee_count = $6, payslip_count = $7, computed_at = $8, updated_at = NOW()
		WHERE id = $1 AND status = 'COMPUTING'
	`, run.ID, run.Status, run.TotalGross, run.TotalDeductions, run.TotalNet,
		run.EmployeeCount, run.PayslipCount, run.ComputedAt)
	if err != nil {
		return fmt.Errorf("failed to update payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotComputable
	}

	insertSlip := `
		INSERT INTO payslips (` + payslipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
				$21, $22, $23, $24, $25)
	`
	insertLine := `
		INSERT INTO payslip_lines (
			id, payslip_id, code, kind, description,
			quantity, rate, multiplier, amount, source_ref, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, slip := range payslips {
		snapshot, err := json.Marshal(slip.ProfileSnapshot)
		if err != nil {
			return fmt.Errorf("failed to encode profile snapshot: %w", err)
		}
		if _, err := tx.Exec(ctx, insertSlip,
			slip.ID, slip.RunID, slip.EmployeeID,
			slip.BasicPay, slip.GrossPay, slip.NonStatutoryEarnings, slip.TotalEarnings, slip.TotalDeductions,
			slip.LateUndertimeDeduction, slip.NetPay,
			slip.SSSEmployee, slip.SSSEmployer, slip.PhilHealthEmployee, slip.PhilHealthEmployer,
			slip.PagIbigEmployee, slip.PagIbigEmployer,
			slip.WithholdingTax, slip.TaxableIncome,
			slip.YTD.GrossPay, slip.YTD.TaxableIncome, slip.YTD.TaxWithheld,
			snapshot, slip.PeriodStart, slip.PeriodEnd, slip.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert payslip for %s: %w", slip.EmployeeID, err)
		}

		for _, line := range slip.Lines {
			if _, err := tx.Exec(ctx, insertLine,
				line.ID, slip.ID, line.Code, line.Kind, line.Description,
				line.Quantity, line.Rate, line.Multiplier, line.Amount, line.SourceRef, line.SortOrder,
			); err != nil {
				return fmt.Errorf("failed to insert payslip line: %w", err)
			}
		}
	}

	if len(consumedInstallmentIDs) > 0 {
		if _, err := tx.Exec(ctx, `
			UPDATE penalty_installments
			SET deducted = TRUE, deducted_by_run_id = $1
			WHERE id = ANY($2::text[])
		`, run.ID, consumedInstallmentIDs); err != nil {
			return fmt.Errorf("failed to mark installments deducted: %w", err)
		}
	}

	return nil
}

func (r *payrollRepository) GetPayslipsByRun(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE run_id = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	index := make(map[string]int)
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		index[slip.ID] = len(slips)
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}
	if len(slips) == 0 {
		return slips, nil
	}

	lineRows, err := q.Query(ctx, `
		SELECT id, payslip_id, code, kind, description,
			   quantity, rate, multiplier, amount, source_ref, sort_order
		FROM payslip_lines
		WHERE payslip_id IN (SELECT id FROM payslips WHERE run_id = $1)
		ORDER BY payslip_id, sort_order
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line payroll.PayslipLine
		if err := lineRows.Scan(
			&line.ID, &line.PayslipID, &line.Code, &line.Kind, &line.Description,
			&line.Quantity, &line.Rate, &line.Multiplier, &line.Amount, &line.SourceRef, &line.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip line: %w", err)
		}
		if i, ok := index[line.PayslipID]; ok {
			slips[i].Lines = append(slips[i].Lines, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslip lines: %w", err)
	}

	return slips, nil
}

func (r *payrollRepository) GetPayslipByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	slip, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip by ID: %w", err)
	}

	lineRows, err := q.Query(ctx, `
		SELECT id, payslip_id, code, kind, description,
			   quantity, rate, multiplier, amount, source_ref, sort_order
		FROM payslip_lines
		WHERE payslip_id = $1
		ORDER BY sort_order
	`, id)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to list payslip lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line payroll.PayslipLine
		if err := lineRows.Scan(
			&line.ID, &line.PayslipID, &line.Code, &line.Kind, &line.Description,
			&line.Quantity, &line.Rate, &line.Multiplier, &line.Amount, &line.SourceRef, &line.SortOrder,
		); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to scan payslip line: %w", err)
		}
		slip.Lines = append(slip.Lines, line)
	}
	if err := lineRows.Err(); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to iterate payslip lines: %w", err)
	}

	return slip, nil
}

// ListReleasedPayslips returns header rows only; the YTD accumulator does
// not need itemized lines.
func (r *payrollRepository) ListReleasedPayslips(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + qualifiedPayslipColumns("p") + `
		FROM payslips p
		JOIN payroll_runs r ON r.id = p.run_id
		WHERE p.employee_id = $1
		  AND r.status = 'RELEASED'
		  AND p.period_start >= $2 AND p.period_start < $3
		ORDER BY p.period_start
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list released payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan released payslip: %w", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate released payslips: %w", err)
	}

	return slips, nil
}

func qualifiedPayslipColumns(alias string) string {
	return alias + `.id, ` + alias + `.run_id, ` + alias + `.employee_id,
		` + alias + `.basic_pay, ` + alias + `.gross_pay, ` + alias + `.non_statutory_earnings,
		` + alias + `.total_earnings, ` + alias + `.total_deductions,
		` + alias + `.late_undertime_deduction, ` + alias + `.net_pay,
		` + alias + `.sss_ee, ` + alias + `.sss_er, ` + alias + `.philhealth_ee, ` + alias + `.philhealth_er,
		` + alias + `.pagibig_ee, ` + alias + `.pagibig_er,
		` + alias + `.withholding_tax, ` + alias + `.taxable_income,
		` + alias + `.ytd_gross, ` + alias + `.ytd_taxable, ` + alias + `.ytd_tax_withheld,
		` + alias + `.profile_snapshot, ` + alias + `.period_start, ` + alias + `.period_end, ` + alias + `.created_at`
}

// ========== WAGE PROFILES ==========

const profileColumns = `
	employee_id, wage_type, base_rate, pay_frequency,
	work_days_per_month, hours_per_day,
	benefits_eligible, overtime_eligible, night_diff_eligible,
	allowances, tax_on_full_earnings, statutory_override
`

func scanProfile(row pgx.Row) (payroll.WageProfile, error) {
	var profile payroll.WageProfile
	var allowances []byte
	err := row.Scan(
		&profile.EmployeeID, &profile.WageType, &profile.BaseRate, &profile.PayFrequency,
		&profile.WorkDaysPerMonth, &profile.HoursPerDay,
		&profile.BenefitsEligible, &profile.OvertimeEligible, &profile.NightDiffEligible,
		&allowances, &profile.TaxOnFullEarnings, &profile.StatutoryOverride,
	)
	if err != nil {
		return payroll.WageProfile{}, err
	}
	if len(allowances) > 0 {
		if err := json.Unmarshal(allowances, &profile.Allowances); err != nil {
			return payroll.WageProfile{}, fmt.Errorf("failed to decode allowances: %w", err)
		}
	}
	return profile, nil
}

func (r *payrollRepository) GetWageProfiles(ctx context.Context, employeeIDs []string) (map[string]payroll.WageProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + profileColumns + `
		FROM wage_profiles
		WHERE ($1::text[] IS NULL OR employee_id = ANY($1::text[]))
	`

	var filter []string
	if len(employeeIDs) > 0 {
		filter = employeeIDs
	}

	rows, err := q.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]payroll.WageProfile)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage profile: %w", err)
		}
		profiles[profile.EmployeeID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wage profiles: %w", err)
	}

	return profiles, nil
}

func (r *payrollRepository) UpsertWageProfile(ctx context.Context, profile payroll.WageProfile) (payroll.WageProfile, error) {
	q := GetQuerier(ctx, r.db)

	allowances, err := json.Marshal(profile.Allowances)
	if err != nil {
		return payroll.WageProfile{}, fmt.Errorf("failed to encode allowances: %w", err)
	}

	query := `
		INSERT INTO wage_profiles (
			employee_id, wage_type, base_rate, pay_frequency,
			work_days_per_month, hours_per_day,
			benefits_eligible, overtime_eligible, night_diff_eligible,
			allowances, tax_on_full_earnings, statutory_override
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id) DO UPDATE SET
			wage_type = EXCLUDED.wage_type,
			base_rate = EXCLUDED.base_rate,
			pay_frequency = EXCLUDED.pay_frequency,
			work_days_per_month = EXCLUDED.work_days_per_month,
			hours_per_day = EXCLUDED.hours_per_day,
			benefits_eligible = EXCLUDED.benefits_eligible,
			overtime_eligible = EXCLUDED.overtime_eligible,
			night_diff_eligible = EXCLUDED.night_diff_eligible,
			allowances = EXCLUDED.allowances,
			tax_on_full_earnings = EXCLUDED.tax_on_full_earnings,
			statutory_override = EXCLUDED.statutory_override,
			updated_at = NOW()
		RETURNING ` + profileColumns

	updated, err := scanProfile(q.QueryRow(ctx, query,
		profile.EmployeeID, profile.WageType, profile.BaseRate, profile.PayFrequency,
		profile.WorkDaysPerMonth, profile.HoursPerDay,
		profile.BenefitsEligible, profile.OvertimeEligible, profile.NightDiffEligible,
		allowances, profile.TaxOnFullEarnings, profile.StatutoryOverride,
	))
	if err != nil {
		return payroll.WageProfile{}, fmt.Errorf("failed to upsert wage profile: %w", err)
	}
	return updated, nil
}

// ========== ADJUSTMENTS ==========

func (r *payrollRepository) CreateAdjustment(ctx context.Context, adj payroll.ManualAdjustment) (payroll.ManualAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_adjustments (id, run_id, employee_id, kind, category, description, amount, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		adj.ID, adj.RunID, adj.EmployeeID, adj.Kind, adj.Category, adj.Description, adj.Amount, adj.Remarks,
	).Scan(&adj.CreatedAt, &adj.UpdatedAt)
	if err != nil {
		return payroll.ManualAdjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}
	return adj, nil
}

// DeleteAdjustment refuses to touch adjustments whose run is released or
// mid-computation; the guard lives in the query so there is no window
// between check and delete.
func (r *payrollRepository) DeleteAdjustment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_adjustments a
		USING payroll_runs r
		WHERE a.id = $1 AND r.id = a.run_id
		  AND r.status NOT IN ('RELEASED', 'COMPUTING')
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payroll_adjustments WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check adjustment: %w", err)
		}
		if exists {
			return payroll.ErrAdjustmentLocked
		}
		return payroll.ErrAdjustmentNotFound
	}
	return nil
}

func (r *payrollRepository) ListAdjustmentsByRun(ctx context.Context, runID string, employeeIDs []string) (map[string][]payroll.ManualAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, run_id, employee_id, kind, category, description, amount, remarks, created_at, updated_at
		FROM payroll_adjustments
		WHERE run_id = $1
		  AND ($2::text[] IS NULL OR employee_id = ANY($2::text[]))
		ORDER BY employee_id, created_at
	`

	var filter []string
	if len(employeeIDs) > 0 {
		filter = employeeIDs
	}

	rows, err := q.Query(ctx, query, runID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]payroll.ManualAdjustment)
	for rows.Next() {
		var adj payroll.ManualAdjustment
		if err := rows.Scan(
			&adj.ID, &adj.RunID, &adj.EmployeeID, &adj.Kind, &adj.Category,
			&adj.Description, &adj.Amount, &adj.Remarks, &adj.CreatedAt, &adj.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		byEmployee[adj.EmployeeID] = append(byEmployee[adj.EmployeeID], adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustments: %w", err)
	}

	return byEmployee, nil
}
