package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loanapi/internal/access"
	domain "loanapi/internal/domain/loan"
	"loanapi/internal/domain/uow"
	"loanapi/internal/domain/user"
	"loanapi/pkg/id"
	"loanapi/pkg/money"
)

type Usecase struct {
	uow          uow.UnitOfWork
	loans        domain.Repository
	installments domain.InstallmentRepository
	policy       *access.Policy
	log          *logrus.Logger

	// Now is swappable so schedule tests can pin the calendar.
	Now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, loans domain.Repository, installments domain.InstallmentRepository, policy *access.Policy, log *logrus.Logger) *Usecase {
	return &Usecase{uow: tx, loans: loans, installments: installments, policy: policy, log: log, Now: time.Now}
}

type CreateLoanInput struct {
	CustomerID       string
	Principal        decimal.Decimal
	InterestRate     decimal.Decimal
	InstallmentCount int
}

// CreateByAdmin originates a loan for any customer. Admin only.
func (u *Usecase) CreateByAdmin(ctx context.Context, actor user.Actor, in CreateLoanInput) (*LoanDTO, error) {
	if err := u.policy.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if err := validateTerms(in.Principal, in.InterestRate, in.InstallmentCount); err != nil {
		return nil, err
	}
	return u.originate(ctx, in.CustomerID, in)
}

// CreateForActor originates a loan for the customer linked to the actor.
func (u *Usecase) CreateForActor(ctx context.Context, actor user.Actor, in CreateLoanInput) (*LoanDTO, error) {
	customerID, err := u.policy.LinkedCustomer(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := validateTerms(in.Principal, in.InterestRate, in.InstallmentCount); err != nil {
		return nil, err
	}
	return u.originate(ctx, customerID, in)
}

func validateTerms(principal, rate decimal.Decimal, count int) error {
	if _, ok := domain.AllowedInstallmentCounts[count]; !ok {
		return &domain.ValidationError{Reason: "number of installments can only be 6, 9, 12, or 24"}
	}
	if rate.LessThan(domain.MinInterestRate) || rate.GreaterThan(domain.MaxInterestRate) {
		return &domain.ValidationError{Reason: "interest rate must be between 0.10 and 0.50"}
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return &domain.ValidationError{Reason: "principal must be positive"}
	}
	return nil
}

// originate reserves credit and persists the loan with its schedule as one
// transactional unit. The customer row is locked so two concurrent
// originations cannot both pass the credit check.
func (u *Usecase) originate(ctx context.Context, customerID string, in CreateLoanInput) (*LoanDTO, error) {
	var created *domain.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cust, err := r.Customers.GetByCustomerIDForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		principal := money.Round2(in.Principal)
		if principal.GreaterThan(cust.AvailableCredit()) {
			return domain.ErrInsufficientCredit
		}

		today := dateOnly(u.Now())
		l := &domain.Loan{
			LoanID:           id.NewID32(),
			CustomerID:       cust.CustomerID,
			Principal:        principal,
			InterestRate:     money.Round4(in.InterestRate),
			InstallmentCount: in.InstallmentCount,
			CreatedDate:      today,
		}

		per := l.ScheduledInstallmentAmount()
		first := firstDueDate(today)
		for i := 0; i < l.InstallmentCount; i++ {
			l.Installments = append(l.Installments, domain.Installment{
				Amount:  per,
				DueDate: first.AddDate(0, i, 0),
			})
		}

		cust.UsedCreditLimit = cust.UsedCreditLimit.Add(principal)
		if err := r.Customers.Save(ctx, cust); err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"loan_id":     created.LoanID,
		"customer_id": created.CustomerID,
		"principal":   created.Principal.StringFixed(2),
		"count":       created.InstallmentCount,
	}).Info("loan originated")

	return toLoanDTO(created, created.Installments), nil
}

// List returns the actor's loans. A customer sees only its own; passing a
// foreign customer_id filter is denied. An admin sees all loans; the filter
// is accepted but not applied.
func (u *Usecase) List(ctx context.Context, actor user.Actor, customerIDFilter *string) ([]LoanDTO, error) {
	usr, err := u.policy.ResolveUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	var list []domain.Loan
	if usr.Role == user.RoleCustomer {
		if usr.CustomerID == nil {
			return nil, access.ErrDenied
		}
		if customerIDFilter != nil && *customerIDFilter != *usr.CustomerID {
			return nil, access.ErrDenied
		}
		list, err = u.loans.ListByCustomerID(ctx, *usr.CustomerID)
	} else {
		list, err = u.loans.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]LoanDTO, 0, len(list))
	for i := range list {
		out = append(out, *toLoanDTO(&list[i], nil))
	}
	return out, nil
}

// Get returns one loan with its installment schedule.
func (u *Usecase) Get(ctx context.Context, actor user.Actor, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := u.policy.AuthorizeLoanAccess(ctx, actor, l.CustomerID); err != nil {
		return nil, err
	}
	insts, err := u.installments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return toLoanDTO(l, insts), nil
}

// Installments returns the schedule for one loan.
func (u *Usecase) Installments(ctx context.Context, actor user.Actor, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := u.policy.AuthorizeLoanAccess(ctx, actor, l.CustomerID); err != nil {
		return nil, err
	}
	insts, err := u.installments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]InstallmentDTO, 0, len(insts))
	for i := range insts {
		out = append(out, toInstallmentDTO(l.LoanID, &insts[i]))
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// firstDueDate is the first calendar day of the month after today.
func firstDueDate(today time.Time) time.Time {
	y, m, _ := today.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
}
