package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProductUseCase product CRUD and listing under tenant scope.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create stores a product owned by the caller's tenant. The tenant always
// comes from the principal; a tenant field in the request body is never
// read.
func (uc *ProductUseCase) Create(p access.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if p.TenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProductAlreadyExists
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		TenantID:    p.TenantID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update applies a partial update within the caller's tenant scope.
func (uc *ProductUseCase) Update(p access.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	scope := access.ScopeFor(p, access.ResourceProducts)
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !scope.AllowsTenant(&product.TenantID) {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil && *in.Name != product.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrProductAlreadyExists
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetDetail fetches a product with its tenant, treating cross-tenant ids
// as missing.
func (uc *ProductUseCase) GetDetail(p access.Principal, id string) (*dto.ProductDetailResponse, error) {
	scope := access.ScopeFor(p, access.ResourceProducts)
	row, err := uc.repo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if row == nil || !scope.AllowsTenant(&row.Product.TenantID) {
		return nil, domain.ErrProductNotFound
	}
	return toProductDetailResponse(row), nil
}

// List returns the page of products visible to the principal.
func (uc *ProductUseCase) List(p access.Principal, q listing.Query) (*dto.ProductListResponse, error) {
	q = q.Normalized()
	scope := access.ScopeFor(p, access.ResourceProducts)
	rows, total, err := uc.repo.List(scope, q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductDetailResponse, 0, len(rows))
	for i := range rows {
		data = append(data, *toProductDetailResponse(&rows[i]))
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

// Delete removes a product within the caller's tenant scope.
func (uc *ProductUseCase) Delete(p access.Principal, id string) error {
	scope := access.ScopeFor(p, access.ResourceProducts)
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || !scope.AllowsTenant(&product.TenantID) {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductDetailResponse(row *repository.ProductWithTenant) *dto.ProductDetailResponse {
	return &dto.ProductDetailResponse{
		ProductResponse: *toProductResponse(&row.Product),
		Tenant:          &dto.TenantRef{ID: row.Product.TenantID, Name: row.TenantName},
	}
}
