package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loanapi/internal/access"
	domain "loanapi/internal/domain/loan"
	"loanapi/internal/domain/uow"
	"loanapi/internal/domain/user"
	"loanapi/pkg/money"
)

// dailyAdjustmentRate drives both the early-payment discount and the
// late-payment penalty: 0.1% of the base amount per day.
var dailyAdjustmentRate = money.MustParse("0.001")

// payableWindowMonths: an installment is payable in the current month and
// the next two calendar months.
const payableWindowMonths = 2

type Usecase struct {
	uow    uow.UnitOfWork
	policy *access.Policy
	log    *logrus.Logger

	// Now is swappable so window and pricing tests can pin the calendar.
	Now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, policy *access.Policy, log *logrus.Logger) *Usecase {
	return &Usecase{uow: tx, policy: policy, log: log, Now: time.Now}
}

type Outcome struct {
	InstallmentsPaidCount int             `json:"installments_paid_count"`
	TotalBaseDebited      decimal.Decimal `json:"total_base_amount_debited"`
	TotalActualCharged    decimal.Decimal `json:"total_actual_amount_paid"`
	RemainingPayment      decimal.Decimal `json:"remaining_payment_amount"`
	LoanFullyPaid         bool            `json:"loan_fully_paid"`
	Message               string          `json:"message"`
}

// Pay allocates a payment greedily across the loan's unpaid installments in
// due-date order. Runs inside one transaction with the loan row locked, so
// two concurrent payments against the same loan serialize.
//
// Whole installments only: an installment the remaining payment cannot fully
// cover stops the loop. The remaining balance is decremented by the base
// scheduled amount while the recorded charge carries the day-based
// discount/penalty; credit is released by the principal share per
// installment. These three amounts intentionally differ.
func (u *Usecase) Pay(ctx context.Context, loanID string, amount decimal.Decimal, actor user.Actor) (*Outcome, error) {
	var out *Outcome
	var healed bool

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if err := u.policy.AuthorizeLoanAccess(ctx, actor, l.CustomerID); err != nil {
			return err
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return &domain.PaymentError{Kind: domain.PaymentInvalidAmount, Detail: "payment amount must be positive"}
		}
		if l.Paid {
			return &domain.PaymentError{Kind: domain.PaymentAlreadyPaid, Detail: "this loan is already fully paid"}
		}

		unpaid, err := r.Installments.ListUnpaidByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(unpaid) == 0 {
			// Loan flagged open with nothing left to pay: settle the flag,
			// commit, and reject the payment afterwards.
			l.Paid = true
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			healed = true
			return nil
		}

		today := dateOnly(u.Now())
		maxPayableYM := yearMonth(today) + payableWindowMonths

		var firstEligible *domain.Installment
		for i := range unpaid {
			if yearMonth(unpaid[i].DueDate) <= maxPayableYM {
				firstEligible = &unpaid[i]
				break
			}
		}
		if firstEligible == nil {
			return &domain.PaymentError{
				Kind:   domain.PaymentNoEligibleInstallment,
				Detail: "no installments are currently payable within the 3-month window",
			}
		}
		if amount.LessThan(firstEligible.Amount) {
			return &domain.PaymentError{
				Kind: domain.PaymentBelowMinimum,
				Detail: "payment amount is less than the earliest eligible installment amount (" +
					firstEligible.Amount.StringFixed(2) + ")",
			}
		}

		cust, err := r.Customers.GetByCustomerIDForUpdate(ctx, l.CustomerID)
		if err != nil {
			return err
		}

		remaining := amount
		totalBase := decimal.Zero
		totalActual := decimal.Zero
		paidCount := 0
		share := l.PrincipalShare()

		for i := range unpaid {
			inst := &unpaid[i]
			if yearMonth(inst.DueDate) > maxPayableYM {
				break
			}
			base := inst.Amount
			if remaining.LessThan(base) {
				break
			}

			actual := priceInstallment(base, today, inst.DueDate)
			paidOn := today
			inst.Paid = true
			inst.PaymentDate = &paidOn
			inst.PaidAmount = decimal.NullDecimal{Decimal: actual, Valid: true}
			if err := r.Installments.Save(ctx, inst); err != nil {
				return err
			}

			remaining = remaining.Sub(base)
			totalBase = totalBase.Add(base)
			totalActual = totalActual.Add(actual)
			paidCount++

			cust.UsedCreditLimit = cust.UsedCreditLimit.Sub(share)
		}

		if paidCount > 0 {
			if err := r.Customers.Save(ctx, cust); err != nil {
				return err
			}
		}

		left, err := r.Installments.CountUnpaidByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if left == 0 && paidCount > 0 {
			l.Paid = true
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		var msg string
		if paidCount > 0 {
			msg = fmt.Sprintf("%d installment(s) paid successfully.", paidCount)
			if l.Paid {
				msg += " The loan is now fully paid."
			}
		} else {
			msg = "Payment processed, but no installments were covered. Please check the payment amount and installment status."
		}

		out = &Outcome{
			InstallmentsPaidCount: paidCount,
			TotalBaseDebited:      totalBase,
			TotalActualCharged:    totalActual,
			RemainingPayment:      remaining,
			LoanFullyPaid:         l.Paid,
			Message:               msg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if healed {
		return nil, &domain.PaymentError{
			Kind:   domain.PaymentNoUnpaidInstallments,
			Detail: "no unpaid installments found for this loan",
		}
	}

	u.log.WithFields(logrus.Fields{
		"loan_id":    loanID,
		"paid_count": out.InstallmentsPaidCount,
		"charged":    out.TotalActualCharged.StringFixed(2),
		"fully_paid": out.LoanFullyPaid,
	}).Info("payment allocated")

	return out, nil
}

// priceInstallment applies the day-based time-value adjustment: a discount
// when paid before the due date, a penalty when paid after, the base amount
// on the due date itself.
func priceInstallment(base decimal.Decimal, today, dueDate time.Time) decimal.Decimal {
	days := daysBetween(today, dueDate)
	switch {
	case days > 0:
		discount := money.Round2(base.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(int64(days))))
		return base.Sub(discount)
	case days < 0:
		penalty := money.Round2(base.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(int64(-days))))
		return base.Add(penalty)
	default:
		return base
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween is the signed whole-day distance from a to b at date
// granularity; positive when b is later.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// yearMonth collapses a date to a comparable month ordinal. The payable
// window is calendar-month based, not rolling-day based.
func yearMonth(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}
