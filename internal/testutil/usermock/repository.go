package usermock

import (
	"context"

	domain "loanapi/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, domain.ErrNotFound
}

// Fixed returns a repo that always resolves the given user by id and name.
func Fixed(u *domain.User) *Repo {
	return &Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.User, error) {
			if id == u.ID {
				return u, nil
			}
			return nil, domain.ErrNotFound
		},
		GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username == u.Username {
				return u, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}
