package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// GetByCustomerIDForUpdate locks the customer row for the duration of the
	// surrounding transaction; used wherever usedCreditLimit is mutated.
	GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
}
