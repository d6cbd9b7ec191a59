package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// TenantUseCase tenant CRUD. Routes are super_admin only, so no tenant
// scope applies here; cross-tenant visibility is the point.
type TenantUseCase struct {
	tenantRepo  repository.TenantRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	mailer      Mailer
}

// NewTenantUseCase builds the use case.
func NewTenantUseCase(tenantRepo repository.TenantRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository, mailer Mailer) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo, userRepo: userRepo, productRepo: productRepo, mailer: mailer}
}

// Create provisions a tenant together with exactly one admin user holding
// a generated password, delivered by mail. If the admin cannot be created
// the tenant row is compensating-deleted: a tenant must never exist
// without its admin. Mail failure is logged and does not fail the call.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	existing, err := uc.tenantRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTenantAlreadyExists
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}

	password, err := randomPassword()
	if err != nil {
		uc.rollbackTenant(tenant.ID)
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.rollbackTenant(tenant.ID)
		return nil, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     &tenant.ID,
		Name:         "Admin " + tenant.Name,
		Email:        in.CompanyEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(admin); err != nil {
		uc.rollbackTenant(tenant.ID)
		return nil, err
	}

	if err := uc.mailer.Send(strings.ToLower(admin.Email), LoginPasswordSubject, welcomeBody(admin.Name, admin.Email, password)); err != nil {
		log.Warn().Err(err).Str("tenant", tenant.Name).Msg("admin welcome mail delivery failed")
	}
	return toTenantResponse(tenant), nil
}

func (uc *TenantUseCase) rollbackTenant(id string) {
	if err := uc.tenantRepo.Delete(id); err != nil {
		log.Error().Err(err).Str("tenant_id", id).Msg("compensating tenant delete failed; tenant left without admin")
	}
}

// Update renames a tenant.
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}
	tenant.Name = in.Name
	tenant.UpdatedAt = time.Now()
	if err := uc.tenantRepo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetDetail fetches a tenant with its users and products.
func (uc *TenantUseCase) GetDetail(id string) (*dto.TenantDetailResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}
	users, err := uc.userRepo.ListByTenant(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByTenant(id)
	if err != nil {
		return nil, err
	}
	out := &dto.TenantDetailResponse{
		TenantResponse: *toTenantResponse(tenant),
		Users:          make([]dto.UserResponse, 0, len(users)),
		Products:       make([]dto.ProductResponse, 0, len(products)),
	}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	for _, p := range products {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out, nil
}

// List returns one page of tenants; search matches the tenant name.
func (uc *TenantUseCase) List(q listing.Query) (*dto.TenantListResponse, error) {
	q = q.Normalized()
	tenants, total, err := uc.tenantRepo.List(q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		data = append(data, *toTenantResponse(t))
	}
	return &dto.TenantListResponse{Data: data, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

// Delete removes a tenant; owned users and products go with it through
// the schema's cascade.
func (uc *TenantUseCase) Delete(id string) error {
	tenant, err := uc.tenantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrTenantNotFound
	}
	return uc.tenantRepo.Delete(id)
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
