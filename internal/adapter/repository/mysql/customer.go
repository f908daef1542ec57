package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerDomain "loanapi/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out).Error
	if err != nil {
		return nil, asDomainErr(err, customerDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *CustomerRepository) GetByCustomerIDForUpdate(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	err := forUpdate(r.db.WithContext(ctx)).Where("customer_id = ?", customerID).First(&out).Error
	if err != nil {
		return nil, asDomainErr(err, customerDomain.ErrNotFound)
	}
	return &out, nil
}

// asDomainErr keeps gorm's record-not-found out of the usecases.
func asDomainErr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
