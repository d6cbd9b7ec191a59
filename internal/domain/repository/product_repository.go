package repository

import (
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// ProductWithTenant pairs a product row with its owning tenant's name.
type ProductWithTenant struct {
	Product    entity.Product
	TenantName string
}

// ProductRepository is the persistence port for Product.
type ProductRepository interface {
	// Create persists a new product; returns domain.ErrProductAlreadyExists
	// on a duplicate name.
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetDetail fetches a product joined with its tenant name.
	GetDetail(id string) (*ProductWithTenant, error)
	Update(product *entity.Product) error
	// List returns one page of products visible under scope plus the
	// total match count. Search covers product name and tenant name.
	List(scope access.Scope, q listing.Query) ([]ProductWithTenant, int, error)
	// ListByTenant returns every product of a tenant (tenant detail view).
	ListByTenant(tenantID string) ([]*entity.Product, error)
	Delete(id string) error
}
