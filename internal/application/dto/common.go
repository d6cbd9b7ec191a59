package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TenantRef is the minimal tenant projection embedded in joined views.
type TenantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
