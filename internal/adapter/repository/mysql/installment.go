package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "loanapi/internal/domain/loan"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]loanDomain.Installment, error) {
	var out []loanDomain.Installment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *InstallmentRepository) ListUnpaidByLoanID(ctx context.Context, loanID uint64) ([]loanDomain.Installment, error) {
	var out []loanDomain.Installment
	err := r.db.WithContext(ctx).
		Where("loan_id = ? AND paid = ?", loanID, false).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *InstallmentRepository) CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Installment{}).
		Where("loan_id = ? AND paid = ?", loanID, false).
		Count(&n).Error
	return n, err
}

func (r *InstallmentRepository) Save(ctx context.Context, inst *loanDomain.Installment) error {
	return r.db.WithContext(ctx).Save(inst).Error
}
