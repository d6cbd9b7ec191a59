package repository

import (
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// UserWithTenant pairs a user row with its owning tenant's name for
// joined reads (detail and listings). TenantName is empty for the
// tenant-less super_admin.
type UserWithTenant struct {
	User       entity.User
	TenantName string
}

// UserRepository is the persistence port for User. The implementation
// lives in infrastructure.
type UserRepository interface {
	// Create persists a new user; returns domain.ErrEmailAlreadyExists on
	// a duplicate email.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetDetail fetches a user joined with its tenant name.
	GetDetail(id string) (*UserWithTenant, error)
	Update(user *entity.User) error
	// List returns one page of users visible under scope plus the total
	// match count before pagination. Search covers user name and tenant
	// name.
	List(scope access.Scope, q listing.Query) ([]UserWithTenant, int, error)
	// ListByTenant returns every user of a tenant (tenant detail view).
	ListByTenant(tenantID string) ([]*entity.User, error)
	Delete(id string) error
}
