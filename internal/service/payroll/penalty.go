package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
)

// GenerateInstallments splits a penalty's total evenly across its
// installment count. Amounts are rounded to centavos; the last installment
// absorbs the rounding remainder so the installments always sum exactly to
// the total.
func GenerateInstallments(p payroll.Penalty) ([]payroll.PenaltyInstallment, error) {
	if p.InstallmentCount < 1 {
		return nil, payroll.ErrInvalidInstallments
	}

	count := decimal.NewFromInt(int64(p.InstallmentCount))
	each := p.TotalAmount.Div(count).Round(2)

	installments := make([]payroll.PenaltyInstallment, 0, p.InstallmentCount)
	for i := 1; i <= p.InstallmentCount; i++ {
		amount := each
		if i == p.InstallmentCount {
			amount = p.TotalAmount.Sub(each.Mul(decimal.NewFromInt(int64(p.InstallmentCount - 1))))
		}
		installments = append(installments, payroll.PenaltyInstallment{
			ID:                 uuid.New().String(),
			PenaltyID:          p.ID,
			InstallmentNumber:  i,
			Amount:             amount,
			PenaltyDescription: p.Description,
		})
	}
	return installments, nil
}
