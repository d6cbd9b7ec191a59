package dto

// LoginRequest email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus the authenticated user's profile. The password
// hash never leaves the service.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// ChangePasswordRequest changes the authenticated user's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
