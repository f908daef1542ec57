package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"loanapi/pkg/money"
)

// AllowedInstallmentCounts is the closed set of schedule lengths a loan may
// be originated with.
var AllowedInstallmentCounts = map[int]struct{}{6: {}, 9: {}, 12: {}, 24: {}}

var (
	MinInterestRate = money.MustParse("0.10")
	MaxInterestRate = money.MustParse("0.50")
)

type Loan struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID           string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID       string          `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	Principal        decimal.Decimal `gorm:"type:decimal(19,2)" json:"principal"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,4)" json:"interest_rate"`
	InstallmentCount int             `gorm:"column:installment_count" json:"installment_count"`
	CreatedDate      time.Time       `gorm:"type:date" json:"created_date"`
	Paid             bool            `gorm:"default:false" json:"paid"`
	Installments     []Installment   `gorm:"foreignKey:LoanID;references:ID" json:"-"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// TotalWithInterest is principal scaled by (1 + rate), rounded half-up to 2dp.
// Computed, never stored.
func (l *Loan) TotalWithInterest() decimal.Decimal {
	return money.Round2(l.Principal.Mul(decimal.New(1, 0).Add(l.InterestRate)))
}

// ScheduledInstallmentAmount divides the interest-bearing total evenly.
// The rounding remainder is not redistributed; the schedule sum may drift
// from the total by up to count*0.005.
func (l *Loan) ScheduledInstallmentAmount() decimal.Decimal {
	return money.Round2(l.TotalWithInterest().Div(decimal.NewFromInt(int64(l.InstallmentCount))))
}

// PrincipalShare is the per-installment slice of the raw principal. Credit
// is released by this amount each time an installment is settled.
func (l *Loan) PrincipalShare() decimal.Decimal {
	return money.Round2(l.Principal.Div(decimal.NewFromInt(int64(l.InstallmentCount))))
}

type Installment struct {
	ID          uint64              `gorm:"primaryKey;column:id" json:"id"`
	LoanID      uint64              `gorm:"index:idx_installments_loan" json:"-"`
	Amount      decimal.Decimal     `gorm:"type:decimal(19,2)" json:"amount"`
	PaidAmount  decimal.NullDecimal `gorm:"type:decimal(19,2)" json:"paid_amount"`
	DueDate     time.Time           `gorm:"type:date" json:"due_date"`
	PaymentDate *time.Time          `gorm:"type:date" json:"payment_date"`
	Paid        bool                `gorm:"default:false" json:"paid"`
}

func (Installment) TableName() string { return "loan_installments" }
