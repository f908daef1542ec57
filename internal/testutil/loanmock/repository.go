package loanmock

import (
	"context"

	domain "loanapi/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	ListAllFn              func(ctx context.Context) ([]domain.Loan, error)
	ListByCustomerIDFn     func(ctx context.Context, customerID string) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

// InstallmentRepo mocks domain.InstallmentRepository the same way.
type InstallmentRepo struct {
	ListByLoanIDFn        func(ctx context.Context, loanID uint64) ([]domain.Installment, error)
	ListUnpaidByLoanIDFn  func(ctx context.Context, loanID uint64) ([]domain.Installment, error)
	CountUnpaidByLoanIDFn func(ctx context.Context, loanID uint64) (int64, error)
	SaveFn                func(ctx context.Context, inst *domain.Installment) error
}

func (m *InstallmentRepo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *InstallmentRepo) ListUnpaidByLoanID(ctx context.Context, loanID uint64) ([]domain.Installment, error) {
	if m.ListUnpaidByLoanIDFn != nil {
		return m.ListUnpaidByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *InstallmentRepo) CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountUnpaidByLoanIDFn != nil {
		return m.CountUnpaidByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *InstallmentRepo) Save(ctx context.Context, inst *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inst)
	}
	return nil
}
