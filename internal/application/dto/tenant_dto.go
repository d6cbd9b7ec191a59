package dto

import "time"

// CreateTenantRequest input to create a tenant. CompanyEmail becomes the
// provisioned admin user's address.
type CreateTenantRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	CompanyEmail string `json:"company_email" validate:"required,email"`
}

// UpdateTenantRequest mutable tenant fields.
type UpdateTenantRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// TenantResponse tenant output.
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TenantDetailResponse tenant with its owned users and products.
type TenantDetailResponse struct {
	TenantResponse
	Users    []UserResponse    `json:"users"`
	Products []ProductResponse `json:"products"`
}

// TenantListResponse one page of tenants plus the total match count.
type TenantListResponse struct {
	Data  []TenantResponse `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
