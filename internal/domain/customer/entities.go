package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	CustomerID      string          `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name            string          `gorm:"size:100" json:"name"`
	CreditLimit     decimal.Decimal `gorm:"type:decimal(19,2)" json:"credit_limit"`
	UsedCreditLimit decimal.Decimal `gorm:"type:decimal(19,2)" json:"used_credit_limit"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.UsedCreditLimit)
}
