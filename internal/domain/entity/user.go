package entity

import "time"

// Role is the closed set of user roles, ordered by privilege:
// super_admin > admin > manager > staff.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleStaff      Role = "staff"
)

// TenantRoles are the roles assignable to tenant-scoped users.
// super_admin is tenant-less and only created by the seeder.
var TenantRoles = []Role{RoleAdmin, RoleManager, RoleStaff}

// ValidTenantRole reports whether r may be assigned to a tenant user.
func ValidTenantRole(r Role) bool {
	for _, t := range TenantRoles {
		if r == t {
			return true
		}
	}
	return false
}

// User is an account within a tenant. TenantID is nil only for the
// super_admin and never changes after creation.
type User struct {
	ID           string
	TenantID     *string
	Name         string
	Email        string // globally unique
	Phone        string
	Address      string
	PasswordHash string // bcrypt hash, never plaintext after persist
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
