package entity

import "time"

// Tenant is an organization owning users and products. Deleting a tenant
// cascades to both (ON DELETE CASCADE in the schema).
type Tenant struct {
	ID        string
	Name      string // globally unique
	CreatedAt time.Time
	UpdatedAt time.Time
}
