package mysql

import (
	"context"
	"errors"
	"testing"

	customerDomain "loanapi/internal/domain/customer"
	loanDomain "loanapi/internal/domain/loan"
	"loanapi/internal/domain/uow"
	"loanapi/pkg/id"
	"loanapi/pkg/money"
)

func seedCustomer(t *testing.T, repo *CustomerRepository, limit string) *customerDomain.Customer {
	t.Helper()
	c := &customerDomain.Customer{
		CustomerID:      id.NewID32(),
		Name:            "Siti",
		CreditLimit:     money.MustParse(limit),
		UsedCreditLimit: money.MustParse("0.00"),
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)
	loanRepo := NewLoanRepository(db)

	cust := seedCustomer(t, custRepo, "50000.00")
	loanID := id.NewID32()

	// reserve credit and create the loan as one unit
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerIDForUpdate(ctx, cust.CustomerID)
		if err != nil {
			return err
		}
		c.UsedCreditLimit = c.UsedCreditLimit.Add(money.MustParse("1200.00"))
		if err := r.Customers.Save(ctx, c); err != nil {
			return err
		}
		return r.Loans.Create(ctx, makeLoan(loanID, cust.CustomerID, 12))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := loanRepo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	got, err := custRepo.GetByCustomerID(ctx, cust.CustomerID)
	if err != nil {
		t.Fatalf("GetByCustomerID: %v", err)
	}
	if !got.UsedCreditLimit.Equal(money.MustParse("1200.00")) {
		t.Fatalf("used credit = %s after commit, want 1200.00", got.UsedCreditLimit)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	custRepo := NewCustomerRepository(db)
	loanRepo := NewLoanRepository(db)

	cust := seedCustomer(t, custRepo, "50000.00")
	loanID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerIDForUpdate(ctx, cust.CustomerID)
		if err != nil {
			return err
		}
		c.UsedCreditLimit = money.MustParse("1200.00")
		if err := r.Customers.Save(ctx, c); err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, makeLoan(loanID, cust.CustomerID, 12)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
	got, err := custRepo.GetByCustomerID(ctx, cust.CustomerID)
	if err != nil {
		t.Fatalf("GetByCustomerID: %v", err)
	}
	if !got.UsedCreditLimit.IsZero() {
		t.Fatalf("used credit = %s after rollback, want 0", got.UsedCreditLimit)
	}
}

func TestGormUoW_WithinLoanTx_CommitAndRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	instRepo := NewInstallmentRepository(db)

	l := makeLoan(id.NewID32(), id.NewID32(), 6)
	if err := loanRepo.Create(ctx, l); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	// commit path: settle the first installment
	if err := guow.WithinLoanTx(ctx, l.LoanID, func(r uow.Repos, locked *loanDomain.Loan) error {
		if locked.LoanID != l.LoanID {
			t.Fatalf("wrong loan passed to fn: %+v", locked)
		}
		unpaid, err := r.Installments.ListUnpaidByLoanID(ctx, locked.ID)
		if err != nil {
			return err
		}
		first := unpaid[0]
		first.Paid = true
		return r.Installments.Save(ctx, &first)
	}); err != nil {
		t.Fatalf("WithinLoanTx commit err: %v", err)
	}
	if n, _ := instRepo.CountUnpaidByLoanID(ctx, l.ID); n != 5 {
		t.Fatalf("unpaid = %d after commit, want 5", n)
	}

	// rollback path: the settle below must not stick
	sentinel := errors.New("stop")
	_ = guow.WithinLoanTx(ctx, l.LoanID, func(r uow.Repos, locked *loanDomain.Loan) error {
		unpaid, err := r.Installments.ListUnpaidByLoanID(ctx, locked.ID)
		if err != nil {
			return err
		}
		next := unpaid[0]
		next.Paid = true
		if err := r.Installments.Save(ctx, &next); err != nil {
			return err
		}
		return sentinel
	})
	if n, _ := instRepo.CountUnpaidByLoanID(ctx, l.ID); n != 5 {
		t.Fatalf("unpaid = %d after rollback, want 5", n)
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("callback must not run when the loan is missing")
		return nil
	})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("want loan ErrNotFound, got %v", err)
	}
}
