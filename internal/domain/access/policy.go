package access

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// Principal is the authenticated identity attached to a request after
// token resolution. TenantID is empty only for the super_admin. It is
// passed explicitly to every use case that needs role/tenant context.
type Principal struct {
	UserID   string
	Name     string
	Role     entity.Role
	TenantID string
}

// visibleRoles is the AccessPolicy table: which subordinate roles each
// role may see when listing users. Edit policy here and nowhere else.
// super_admin is absent on purpose: it sees all tenants and all roles.
var visibleRoles = map[entity.Role][]entity.Role{
	entity.RoleAdmin:   {entity.RoleManager, entity.RoleStaff},
	entity.RoleManager: {entity.RoleStaff},
	entity.RoleStaff:   {},
}

// VisibleRoles returns the roles a principal of the given role may see in
// user listings. A nil result means no role restriction (super_admin);
// an empty non-nil result means no rows are visible (staff).
func VisibleRoles(r entity.Role) []entity.Role {
	if r == entity.RoleSuperAdmin {
		return nil
	}
	roles, ok := visibleRoles[r]
	if !ok {
		return []entity.Role{}
	}
	out := make([]entity.Role, len(roles))
	copy(out, roles)
	return out
}

// Authorize decides whether the principal's role is in the route's
// declared required-role set. An empty set means the route is public by
// declaration. Role check only: tenant scoping is a separate, mandatory
// second check (see ScopeFor).
func Authorize(p Principal, required ...entity.Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if p.Role == r {
			return true
		}
	}
	return false
}
