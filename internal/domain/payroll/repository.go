package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// PayrollRepository defines data access for runs, payslips, wage profiles,
// adjustments and penalties.
type PayrollRepository interface {
	// Runs
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	ListRuns(ctx context.Context, limit, offset int) ([]PayrollRun, int64, error)
	UpdateRunStatus(ctx context.Context, id string, from, to RunStatus) error

	// ReplaceRunPayslips deletes every payslip for the run and inserts the
	// fresh set plus the run totals inside the given transaction, and
	// flags the consumed penalty installments. One atomic unit so a
	// recompute never leaves partial state.
	ReplaceRunPayslips(ctx context.Context, tx pgx.Tx, run PayrollRun, payslips []Payslip, consumedInstallmentIDs []string) error

	// Payslips
	GetPayslipsByRun(ctx context.Context, runID string) ([]Payslip, error)
	GetPayslipByID(ctx context.Context, id string) (Payslip, error)

	// ListReleasedPayslips returns an employee's payslips belonging to
	// RELEASED runs with period start in [from, to), ordered by period
	// start ascending.
	ListReleasedPayslips(ctx context.Context, employeeID string, from, to time.Time) ([]Payslip, error)

	// Wage profiles
	GetWageProfiles(ctx context.Context, employeeIDs []string) (map[string]WageProfile, error)
	UpsertWageProfile(ctx context.Context, profile WageProfile) (WageProfile, error)

	// Adjustments
	CreateAdjustment(ctx context.Context, adj ManualAdjustment) (ManualAdjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error
	ListAdjustmentsByRun(ctx context.Context, runID string, employeeIDs []string) (map[string][]ManualAdjustment, error)

	// Penalties
	CreatePenalty(ctx context.Context, penalty Penalty, installments []PenaltyInstallment) (Penalty, error)
	GetPenaltyByID(ctx context.Context, id string) (Penalty, []PenaltyInstallment, error)
	CancelPenalty(ctx context.Context, id string) error

	// NextDueInstallments returns, per employee, the lowest-numbered
	// undeducted installment of each of the employee's active penalties.
	NextDueInstallments(ctx context.Context, employeeIDs []string) (map[string][]PenaltyInstallment, error)
}
