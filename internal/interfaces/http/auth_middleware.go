package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
)

// Locals keys for the resolved principal in Fiber.
const (
	LocalUserID   = "user_id"
	LocalTenantID = "tenant_id"
	LocalRole     = "role"
	LocalName     = "name"
)

// AuthMiddleware validates the Bearer JWT and loads the principal's
// claims into c.Locals. Everything behind it is default-deny; public
// routes are the explicit allow-list in the router.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// expired vs malformed is not distinguished for the caller
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalTenantID, claims.TenantID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalName, claims.Name)
		return c.Next()
	}
}

// RequireRole authorizes the request against the route's declared
// required-role set. Role check only; tenant scoping happens in the use
// cases. The denial never reveals which role would have sufficed.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := PrincipalFromCtx(c)
		if p.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token carries no role"})
		}
		if !access.Authorize(p, roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "this resource is forbidden from this user"})
		}
		return c.Next()
	}
}

// PrincipalFromCtx rebuilds the principal from locals set by
// AuthMiddleware.
func PrincipalFromCtx(c *fiber.Ctx) access.Principal {
	return access.Principal{
		UserID:   localString(c, LocalUserID),
		Name:     localString(c, LocalName),
		Role:     entity.Role(localString(c, LocalRole)),
		TenantID: localString(c, LocalTenantID),
	}
}

// GetUserID returns the principal's id after AuthMiddleware.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetTenantID returns the principal's tenant id; empty for super_admin.
func GetTenantID(c *fiber.Ctx) string { return localString(c, LocalTenantID) }

// GetRole returns the principal's role after AuthMiddleware.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
