package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	Username     string    `gorm:"size:64;uniqueIndex:ux_users_username" json:"username"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Role         Role      `gorm:"size:16" json:"role"`
	// CustomerID links a CUSTOMER user to its customer record; nil for admins.
	CustomerID *string   `gorm:"size:32" json:"customer_id,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
}

func (User) TableName() string { return "app_users" }

// Actor is the already-authenticated caller of an operation, resolved by the
// auth middleware from the bearer token.
type Actor struct {
	UserID uint64
	Role   Role
}
