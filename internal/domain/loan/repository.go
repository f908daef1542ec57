package loan

import "context"

type Repository interface {
	// Create persists the loan together with its owned installments.
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the surrounding transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListAll(ctx context.Context) ([]Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
}

type InstallmentRepository interface {
	ListByLoanID(ctx context.Context, loanID uint64) ([]Installment, error)
	// ListUnpaidByLoanID returns unpaid installments ordered ascending by due date.
	ListUnpaidByLoanID(ctx context.Context, loanID uint64) ([]Installment, error)
	CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error)
	Save(ctx context.Context, inst *Installment) error
}
