package access

import (
	"context"
	"errors"

	"loanapi/internal/domain/user"
)

var ErrDenied = errors.New("access denied")

// Policy gates every loan operation. An admin may touch any loan; a customer
// only loans owned by its linked customer record.
type Policy struct {
	users user.Repository
}

func NewPolicy(users user.Repository) *Policy { return &Policy{users: users} }

// AuthorizeLoanAccess checks the actor against the loan's owning customer.
// Returns user.ErrNotFound when the actor's user record is gone.
func (p *Policy) AuthorizeLoanAccess(ctx context.Context, actor user.Actor, ownerCustomerID string) error {
	u, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if u.Role == user.RoleAdmin {
		return nil
	}
	if u.CustomerID == nil || *u.CustomerID != ownerCustomerID {
		return ErrDenied
	}
	return nil
}

// RequireAdmin rejects non-admin actors.
func (p *Policy) RequireAdmin(ctx context.Context, actor user.Actor) error {
	u, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if u.Role != user.RoleAdmin {
		return ErrDenied
	}
	return nil
}

// LinkedCustomer resolves the customer record a CUSTOMER actor operates as.
// Admins and unlinked customer users are denied.
func (p *Policy) LinkedCustomer(ctx context.Context, actor user.Actor) (string, error) {
	u, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return "", err
	}
	if u.Role != user.RoleCustomer || u.CustomerID == nil {
		return "", ErrDenied
	}
	return *u.CustomerID, nil
}

// ResolveUser exposes the actor's full user record (role + linked customer)
// for operations that branch on both, such as loan listing.
func (p *Policy) ResolveUser(ctx context.Context, actor user.Actor) (*user.User, error) {
	return p.users.GetByID(ctx, actor.UserID)
}
