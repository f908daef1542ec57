package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "loanapi/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	err := r.db.WithContext(ctx).First(&out, id).Error
	if err != nil {
		return nil, asDomainErr(err, userDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	var out userDomain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&out).Error
	if err != nil {
		return nil, asDomainErr(err, userDomain.ErrNotFound)
	}
	return &out, nil
}
