package domain

import "errors"

// Domain errors (no external dependencies). A row that exists but belongs
// to another tenant surfaces the same not-found sentinel as an absent row.
var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")

	ErrTenantAlreadyExists  = errors.New("tenant already exist")
	ErrEmailAlreadyExists   = errors.New("user already exist")
	ErrProductAlreadyExists = errors.New("product already exist")

	ErrAccountNotFound    = errors.New("account does not found")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("this resource is forbidden from this user")
)
