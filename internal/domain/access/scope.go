package access

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// Resource selects which row-visibility rules apply when deriving a scope.
type Resource int

const (
	ResourceTenants Resource = iota
	ResourceUsers
	ResourceProducts
)

// Scope is the row-visibility predicate derived from a principal. It is
// applied to every list and every fetch-by-id before rows are returned.
type Scope struct {
	// All disables the tenant restriction (super_admin only).
	All bool
	// TenantID restricts rows to one tenant when All is false.
	TenantID string
	// Roles restricts user rows to these roles. nil means unrestricted;
	// empty non-nil means no user rows are visible at all.
	Roles []entity.Role
}

// ScopeFor computes the visibility predicate for a principal over a
// resource type. Only super_admin ever gets cross-tenant visibility; for
// users the tenant predicate is intersected with the AccessPolicy table.
func ScopeFor(p Principal, r Resource) Scope {
	if p.Role == entity.RoleSuperAdmin {
		return Scope{All: true}
	}
	s := Scope{TenantID: p.TenantID}
	if r == ResourceUsers {
		s.Roles = VisibleRoles(p.Role)
	}
	return s
}

// RoleRestricted reports whether the scope carries a role predicate.
func (s Scope) RoleRestricted() bool { return s.Roles != nil }

// Empty reports whether the scope can never match a row (a staff
// principal listing users). Callers short-circuit to an empty page
// instead of querying.
func (s Scope) Empty() bool { return s.Roles != nil && len(s.Roles) == 0 }

// AllowsTenant reports whether a row owned by tenantID is visible.
// A nil tenantID marks a tenant-less row (super_admin user), visible only
// to an unrestricted scope.
func (s Scope) AllowsTenant(tenantID *string) bool {
	if s.All {
		return true
	}
	return tenantID != nil && *tenantID == s.TenantID
}

// AllowsRole reports whether a user row with the given role is visible.
func (s Scope) AllowsRole(r entity.Role) bool {
	if s.Roles == nil {
		return true
	}
	for _, v := range s.Roles {
		if v == r {
			return true
		}
	}
	return false
}
