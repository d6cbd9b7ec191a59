package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product. The owning tenant is
// always the creating principal's tenant; a tenant field in the body is
// ignored.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest partial product update; nil fields keep their
// current value.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenantId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductDetailResponse product joined with its owning tenant.
type ProductDetailResponse struct {
	ProductResponse
	Tenant *TenantRef `json:"tenant,omitempty"`
}

// ProductListResponse one page of products plus the total match count
// before pagination.
type ProductListResponse struct {
	Data  []ProductDetailResponse `json:"data"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}
