package loan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("loan not found")
	ErrInsufficientCredit = errors.New("insufficient credit limit")
)

// ValidationError reports an out-of-range or malformed origination input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

type PaymentErrorKind string

const (
	PaymentAlreadyPaid           PaymentErrorKind = "already_paid"
	PaymentInvalidAmount         PaymentErrorKind = "invalid_amount"
	PaymentNoUnpaidInstallments  PaymentErrorKind = "no_unpaid_installments"
	PaymentNoEligibleInstallment PaymentErrorKind = "no_eligible_installment"
	PaymentBelowMinimum          PaymentErrorKind = "below_minimum"
)

// PaymentError carries the rejection kind plus a caller-facing detail
// (for BelowMinimum the detail names the required amount).
type PaymentError struct {
	Kind   PaymentErrorKind
	Detail string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment rejected (%s): %s", e.Kind, e.Detail)
}
