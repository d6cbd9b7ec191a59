package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product belongs to exactly one tenant, fixed at creation from the
// creating principal and never reassigned.
type Product struct {
	ID          string
	TenantID    string
	Name        string // globally unique
	Description string
	Price       decimal.Decimal // non-negative
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
