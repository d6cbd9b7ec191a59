package repository

import (
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// TenantRepository is the persistence port for Tenant. Deleting a tenant
// cascades to its users and products at the schema level.
type TenantRepository interface {
	// Create persists a new tenant; returns domain.ErrTenantAlreadyExists
	// on a duplicate name.
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	GetByName(name string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	// List returns one page of tenants plus the total match count.
	// Search covers the tenant name.
	List(q listing.Query) ([]*entity.Tenant, int, error)
	Delete(id string) error
}
