package uow

import (
	"context"

	"loanapi/internal/domain/customer"
	"loanapi/internal/domain/loan"
	"loanapi/internal/domain/user"
)

type Repos struct {
	Customers    customer.Repository
	Loans        loan.Repository
	Installments loan.InstallmentRepository
	Users        user.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one transaction; all staged writes commit
	// together or roll back together.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up front, then runs fn in the same
	// transaction. Serializes concurrent payments against one loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
