package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/handler/http/response"
	payrollsvc "github.com/suweldo/suweldo-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	// Runs
	CreateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	ComputeRun(w http.ResponseWriter, r *http.Request)
	ReleaseRun(w http.ResponseWriter, r *http.Request)

	// Payslips
	GetRunPayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)

	// Adjustments
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)

	// Penalties
	CreatePenalty(w http.ResponseWriter, r *http.Request)
	GetPenalty(w http.ResponseWriter, r *http.Request)
	CancelPenalty(w http.ResponseWriter, r *http.Request)

	// Wage profiles
	UpsertWageProfile(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollsvc.Service
}

func NewPayrollHandler(payrollService *payrollsvc.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	run, err := h.payrollService.CreateRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created", toRunResponse(run))
}

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRunResponse(run))
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, total, err := h.payrollService.ListRuns(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, toRunResponse(run))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) ComputeRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeRunRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	run, result, err := h.payrollService.ComputeRun(r.Context(), chi.URLParam(r, "runID"), req.EmployeeIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ComputeRunResponse{
		Run:           toRunResponse(run),
		PayslipCount:  result.Totals.PayslipCount,
		EmployeeCount: result.Totals.EmployeeCount,
		Errors:        result.Errors,
	})
}

func (h *payrollHandlerImpl) ReleaseRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.ReleaseRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run released", toRunResponse(run))
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) GetRunPayslips(w http.ResponseWriter, r *http.Request) {
	slips, err := h.payrollService.GetRunPayslips(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		items = append(items, toPayslipResponse(slip))
	}
	response.Success(w, items)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	slip, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "payslipID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPayslipResponse(slip))
}

// ========== ADJUSTMENTS ==========

func (h *payrollHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	adj, err := h.payrollService.CreateAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created", adj)
}

func (h *payrollHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteAdjustment(r.Context(), chi.URLParam(r, "adjustmentID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}

// ========== PENALTIES ==========

func (h *payrollHandlerImpl) CreatePenalty(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	penalty, installments, err := h.payrollService.CreatePenalty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Penalty created", map[string]interface{}{
		"penalty":      penalty,
		"installments": installments,
	})
}

func (h *payrollHandlerImpl) GetPenalty(w http.ResponseWriter, r *http.Request) {
	penalty, installments, err := h.payrollService.GetPenalty(r.Context(), chi.URLParam(r, "penaltyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"penalty":      penalty,
		"installments": installments,
	})
}

func (h *payrollHandlerImpl) CancelPenalty(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.CancelPenalty(r.Context(), chi.URLParam(r, "penaltyID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Penalty cancelled", nil)
}

// ========== WAGE PROFILES ==========

func (h *payrollHandlerImpl) UpsertWageProfile(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertWageProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.payrollService.UpsertWageProfile(r.Context(), req.ToProfile())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// ========== MAPPERS ==========

func toRunResponse(run payroll.PayrollRun) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:              run.ID,
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		Frequency:       string(run.Frequency),
		Status:          string(run.Status),
		TotalGross:      run.TotalGross.StringFixed(2),
		TotalDeductions: run.TotalDeductions.StringFixed(2),
		TotalNet:        run.TotalNet.StringFixed(2),
		EmployeeCount:   run.EmployeeCount,
		PayslipCount:    run.PayslipCount,
	}
	if run.ComputedAt != nil {
		v := run.ComputedAt.Format(time.RFC3339)
		resp.ComputedAt = &v
	}
	if run.ReleasedAt != nil {
		v := run.ReleasedAt.Format(time.RFC3339)
		resp.ReleasedAt = &v
	}
	return resp
}

func toPayslipResponse(slip payroll.Payslip) payroll.PayslipResponse {
	resp := payroll.PayslipResponse{
		ID:              slip.ID,
		RunID:           slip.RunID,
		EmployeeID:      slip.EmployeeID,
		BasicPay:        slip.BasicPay.StringFixed(2),
		GrossPay:        slip.GrossPay.StringFixed(2),
		TotalEarnings:   slip.TotalEarnings.StringFixed(2),
		TotalDeductions: slip.TotalDeductions.StringFixed(2),
		NetPay:          slip.NetPay.StringFixed(2),
		WithholdingTax:  slip.WithholdingTax.StringFixed(2),
		TaxableIncome:   slip.TaxableIncome.StringFixed(2),
		YTDGross:        slip.YTD.GrossPay.StringFixed(2),
		YTDTaxable:      slip.YTD.TaxableIncome.StringFixed(2),
		YTDTaxWithheld:  slip.YTD.TaxWithheld.StringFixed(2),
	}
	for _, line := range slip.Lines {
		resp.Lines = append(resp.Lines, payroll.PayslipLineResponse{
			Code:        string(line.Code),
			Kind:        string(line.Kind),
			Description: line.Description,
			Quantity:    line.Quantity.String(),
			Rate:        line.Rate.StringFixed(4),
			Multiplier:  line.Multiplier.String(),
			Amount:      line.Amount.StringFixed(2),
			SourceRef:   line.SourceRef,
			SortOrder:   line.SortOrder,
		})
	}
	return resp
}
