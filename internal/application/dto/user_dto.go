package dto

// CreateUserRequest input to create a tenant user. The password is
// generated server-side and delivered by mail; the tenant is always the
// creating principal's tenant, never client-supplied.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	Role    string `json:"role" validate:"required,oneof=admin manager staff"`
}

// UpdateUserRequest mutable user fields. Email and tenant are immutable.
type UpdateUserRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	Role    string `json:"role" validate:"required,oneof=admin manager staff"`
}

// UserResponse user output without the password hash.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// UserDetailResponse user joined with its owning tenant.
type UserDetailResponse struct {
	UserResponse
	Tenant *TenantRef `json:"tenant,omitempty"`
}

// UserListResponse one page of users plus the total match count before
// pagination.
type UserListResponse struct {
	Data  []UserDetailResponse `json:"data"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
