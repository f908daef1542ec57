package loan

import (
	"github.com/shopspring/decimal"

	domain "loanapi/internal/domain/loan"
)

const dateLayout = "2006-01-02"

type LoanDTO struct {
	LoanID            string           `json:"loan_id"`
	CustomerID        string           `json:"customer_id"`
	Principal         decimal.Decimal  `json:"principal"`
	InterestRate      decimal.Decimal  `json:"interest_rate"`
	TotalWithInterest decimal.Decimal  `json:"total_amount_with_interest"`
	InstallmentCount  int              `json:"installment_count"`
	CreatedDate       string           `json:"created_date"`
	Paid              bool             `json:"paid"`
	Installments      []InstallmentDTO `json:"installments,omitempty"`
}

type InstallmentDTO struct {
	ID          uint64           `json:"id"`
	LoanID      string           `json:"loan_id"`
	Amount      decimal.Decimal  `json:"amount"`
	PaidAmount  *decimal.Decimal `json:"paid_amount"`
	DueDate     string           `json:"due_date"`
	PaymentDate *string          `json:"payment_date"`
	Paid        bool             `json:"paid"`
}

// toLoanDTO maps a loan to its response shape; pass installments for the
// detail view, nil for list rows.
func toLoanDTO(l *domain.Loan, insts []domain.Installment) *LoanDTO {
	dto := &LoanDTO{
		LoanID:            l.LoanID,
		CustomerID:        l.CustomerID,
		Principal:         l.Principal,
		InterestRate:      l.InterestRate,
		TotalWithInterest: l.TotalWithInterest(),
		InstallmentCount:  l.InstallmentCount,
		CreatedDate:       l.CreatedDate.Format(dateLayout),
		Paid:              l.Paid,
	}
	for i := range insts {
		dto.Installments = append(dto.Installments, toInstallmentDTO(l.LoanID, &insts[i]))
	}
	return dto
}

func toInstallmentDTO(loanID string, inst *domain.Installment) InstallmentDTO {
	dto := InstallmentDTO{
		ID:      inst.ID,
		LoanID:  loanID,
		Amount:  inst.Amount,
		DueDate: inst.DueDate.Format(dateLayout),
		Paid:    inst.Paid,
	}
	if inst.PaidAmount.Valid {
		v := inst.PaidAmount.Decimal
		dto.PaidAmount = &v
	}
	if inst.PaymentDate != nil {
		s := inst.PaymentDate.Format(dateLayout)
		dto.PaymentDate = &s
	}
	return dto
}
