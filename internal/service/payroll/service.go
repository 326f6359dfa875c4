package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
)

// Service owns the payroll run lifecycle: DRAFT, COMPUTING, REVIEW,
// RELEASED. Computation is an idempotent overwrite, so a run can be
// recomputed from REVIEW any number of times before release.
type Service struct {
	db     *database.DB
	repo   payroll.PayrollRepository
	loader *Loader
	engine *Engine

	loc     *time.Location
	workers int
	logger  *slog.Logger
}

func NewService(db *database.DB, repo payroll.PayrollRepository, loader *Loader, engine *Engine, loc *time.Location, workers int, logger *slog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		db:      db,
		repo:    repo,
		loader:  loader,
		engine:  engine,
		loc:     loc,
		workers: workers,
		logger:  logger,
	}
}

// CreateRun opens a new DRAFT run. Period bounds are interpreted in the
// site timezone; the end date is inclusive.
func (s *Service) CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.PayrollRun, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRun{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.PeriodStart, s.loc)
	end, _ := time.ParseInLocation("2006-01-02", req.PeriodEnd, s.loc)

	run := payroll.PayrollRun{
		ID:          uuid.New().String(),
		PeriodStart: start,
		PeriodEnd:   end,
		Frequency:   payroll.PayFrequency(req.Frequency),
		Status:      payroll.RunStatusDraft,
	}
	return s.repo.CreateRun(ctx, run)
}

func (s *Service) GetRun(ctx context.Context, id string) (payroll.PayrollRun, error) {
	return s.repo.GetRunByID(ctx, id)
}

func (s *Service) ListRuns(ctx context.Context, limit, offset int) ([]payroll.PayrollRun, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListRuns(ctx, limit, offset)
}

// ComputeRun computes (or recomputes) a run for the given employees; an
// empty filter means every active employee. The run moves to COMPUTING for
// the duration and lands in REVIEW on success. Prior payslips for the run
// are replaced wholesale in one transaction, so a failed recompute leaves
// the previous results untouched and the run back in DRAFT.
func (s *Service) ComputeRun(ctx context.Context, runID string, employeeIDs []string) (payroll.PayrollRun, payroll.RunResult, error) {
	run, err := s.repo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.PayrollRun{}, payroll.RunResult{}, err
	}
	if run.Status != payroll.RunStatusDraft && run.Status != payroll.RunStatusReview {
		return payroll.PayrollRun{}, payroll.RunResult{}, payroll.ErrRunNotComputable
	}

	if err := s.repo.UpdateRunStatus(ctx, run.ID, run.Status, payroll.RunStatusComputing); err != nil {
		return payroll.PayrollRun{}, payroll.RunResult{}, err
	}

	result, computed, err := s.computeLocked(ctx, run, employeeIDs)
	if err != nil {
		// Best effort rollback; the run must not stay stuck in COMPUTING.
		if rbErr := s.repo.UpdateRunStatus(ctx, run.ID, payroll.RunStatusComputing, payroll.RunStatusDraft); rbErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back run status",
				slog.String("run_id", run.ID), slog.Any("error", rbErr))
		}
		return payroll.PayrollRun{}, payroll.RunResult{}, err
	}

	s.logger.InfoContext(ctx, "payroll run computed",
		slog.String("run_id", computed.ID),
		slog.Int("payslips", computed.PayslipCount),
		slog.Int("errors", len(result.Errors)),
	)
	return computed, result, nil
}

func (s *Service) computeLocked(ctx context.Context, run payroll.PayrollRun, employeeIDs []string) (payroll.RunResult, payroll.PayrollRun, error) {
	inputs, err := s.loader.LoadRunInputs(ctx, run, employeeIDs)
	if err != nil {
		return payroll.RunResult{}, payroll.PayrollRun{}, err
	}

	result := s.computeAll(run, inputs)

	now := time.Now().UTC()
	run.Status = payroll.RunStatusReview
	run.ComputedAt = &now
	run.TotalGross = result.Totals.TotalGross
	run.TotalDeductions = result.Totals.TotalDeductions
	run.TotalNet = result.Totals.TotalNet
	run.EmployeeCount = result.Totals.EmployeeCount
	run.PayslipCount = result.Totals.PayslipCount

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return payroll.RunResult{}, payroll.PayrollRun{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.ReplaceRunPayslips(ctx, tx, run, result.Payslips, consumedInstallmentIDs(result.Payslips)); err != nil {
		return payroll.RunResult{}, payroll.PayrollRun{}, fmt.Errorf("persist payslips: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return payroll.RunResult{}, payroll.PayrollRun{}, fmt.Errorf("commit payslips: %w", err)
	}

	return result, run, nil
}

// computeAll fans the per-employee computation over a bounded worker pool.
// Output order is fixed by employee ID regardless of scheduling.
func (s *Service) computeAll(run payroll.PayrollRun, inputs RunInputs) payroll.RunResult {
	workers := s.workers
	if workers > len(inputs.Employees) {
		workers = len(inputs.Employees)
	}

	var (
		mu     sync.Mutex
		result payroll.RunResult
	)

	jobs := make(chan payroll.EmployeeInput)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				slip, err := s.engine.ComputePayslip(run, in, inputs.Events)
				mu.Lock()
				if err != nil {
					result.Errors = append(result.Errors, payroll.ComputeError{
						EmployeeID: in.Employee.ID,
						Message:    err.Error(),
					})
				} else {
					result.Payslips = append(result.Payslips, slip)
				}
				mu.Unlock()
			}
		}()
	}
	for _, in := range inputs.Employees {
		jobs <- in
	}
	close(jobs)
	wg.Wait()

	sort.Slice(result.Payslips, func(i, j int) bool {
		return result.Payslips[i].EmployeeID < result.Payslips[j].EmployeeID
	})
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].EmployeeID < result.Errors[j].EmployeeID
	})

	result.Totals = sumTotals(result.Payslips)
	return result
}

func sumTotals(slips []payroll.Payslip) payroll.RunTotals {
	totals := payroll.RunTotals{
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	for _, slip := range slips {
		totals.TotalGross = totals.TotalGross.Add(slip.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(slip.TotalDeductions)
		totals.TotalNet = totals.TotalNet.Add(slip.NetPay)
	}
	totals.EmployeeCount = len(slips)
	totals.PayslipCount = len(slips)
	return totals
}

func consumedInstallmentIDs(slips []payroll.Payslip) []string {
	var ids []string
	for _, slip := range slips {
		for _, line := range slip.Lines {
			if line.Code == payroll.LinePenalty && line.SourceRef != nil {
				ids = append(ids, *line.SourceRef)
			}
		}
	}
	return ids
}

// ReleaseRun finalizes a run in REVIEW. Released runs are immutable and
// their payslips enter the YTD basis of later runs.
func (s *Service) ReleaseRun(ctx context.Context, runID string) (payroll.PayrollRun, error) {
	run, err := s.repo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	switch run.Status {
	case payroll.RunStatusReleased:
		return payroll.PayrollRun{}, payroll.ErrRunAlreadyReleased
	case payroll.RunStatusReview:
	default:
		return payroll.PayrollRun{}, payroll.ErrRunNotReviewable
	}

	if err := s.repo.UpdateRunStatus(ctx, run.ID, payroll.RunStatusReview, payroll.RunStatusReleased); err != nil {
		return payroll.PayrollRun{}, err
	}
	s.logger.InfoContext(ctx, "payroll run released", slog.String("run_id", run.ID))
	return s.repo.GetRunByID(ctx, run.ID)
}

func (s *Service) GetRunPayslips(ctx context.Context, runID string) ([]payroll.Payslip, error) {
	if _, err := s.repo.GetRunByID(ctx, runID); err != nil {
		return nil, err
	}
	return s.repo.GetPayslipsByRun(ctx, runID)
}

func (s *Service) GetPayslip(ctx context.Context, id string) (payroll.Payslip, error) {
	return s.repo.GetPayslipByID(ctx, id)
}

// CreateAdjustment attaches a manual earning or deduction to a run still
// open for editing.
func (s *Service) CreateAdjustment(ctx context.Context, req payroll.CreateAdjustmentRequest) (payroll.ManualAdjustment, error) {
	if err := req.Validate(); err != nil {
		return payroll.ManualAdjustment{}, err
	}

	run, err := s.repo.GetRunByID(ctx, req.RunID)
	if err != nil {
		return payroll.ManualAdjustment{}, err
	}
	if run.Status == payroll.RunStatusReleased || run.Status == payroll.RunStatusComputing {
		return payroll.ManualAdjustment{}, payroll.ErrAdjustmentLocked
	}

	adj := payroll.ManualAdjustment{
		ID:          uuid.New().String(),
		RunID:       req.RunID,
		EmployeeID:  req.EmployeeID,
		Kind:        payroll.AdjustmentKind(req.Kind),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Remarks:     req.Remarks,
	}
	return s.repo.CreateAdjustment(ctx, adj)
}

// DeleteAdjustment removes a manual adjustment. The repository refuses the
// delete once the owning run is released.
func (s *Service) DeleteAdjustment(ctx context.Context, id string) error {
	return s.repo.DeleteAdjustment(ctx, id)
}

// CreatePenalty records a penalty and generates its installment schedule.
func (s *Service) CreatePenalty(ctx context.Context, req payroll.CreatePenaltyRequest) (payroll.Penalty, []payroll.PenaltyInstallment, error) {
	if err := req.Validate(); err != nil {
		return payroll.Penalty{}, nil, err
	}

	penalty := payroll.Penalty{
		ID:               uuid.New().String(),
		EmployeeID:       req.EmployeeID,
		Description:      req.Description,
		TotalAmount:      req.TotalAmount,
		InstallmentCount: req.InstallmentCount,
		Status:           payroll.PenaltyActive,
	}
	installments, err := GenerateInstallments(penalty)
	if err != nil {
		return payroll.Penalty{}, nil, err
	}

	created, err := s.repo.CreatePenalty(ctx, penalty, installments)
	if err != nil {
		return payroll.Penalty{}, nil, err
	}
	return created, installments, nil
}

// CancelPenalty stops further installments from being deducted. Already
// deducted installments stand.
func (s *Service) CancelPenalty(ctx context.Context, id string) error {
	return s.repo.CancelPenalty(ctx, id)
}

func (s *Service) GetPenalty(ctx context.Context, id string) (payroll.Penalty, []payroll.PenaltyInstallment, error) {
	return s.repo.GetPenaltyByID(ctx, id)
}

func (s *Service) UpsertWageProfile(ctx context.Context, profile payroll.WageProfile) (payroll.WageProfile, error) {
	if profile.WorkDaysPerMonth <= 0 {
		profile.WorkDaysPerMonth = 26
	}
	if profile.HoursPerDay <= 0 {
		profile.HoursPerDay = 8
	}
	switch profile.WageType {
	case payroll.WageTypeMonthly, payroll.WageTypeDaily, payroll.WageTypeHourly:
	default:
		return payroll.WageProfile{}, payroll.ErrInvalidWageType
	}
	return s.repo.UpsertWageProfile(ctx, profile)
}
