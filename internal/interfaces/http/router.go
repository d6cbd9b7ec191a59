package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	TenantUC  *usecase.TenantUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registers the API routes. Login is the only public route; every
// other route sits behind AuthMiddleware, and every mutating route
// declares its required-role set with RequireRole.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/user/login", authHandler.Login)
	authGroup.Post("/user/changePassword", authn,
		RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff),
		authHandler.ChangePassword)

	// Tenants (super_admin only, cross-tenant by definition)
	tenants := api.Group("/tenant", authn, RequireRole(entity.RoleSuperAdmin))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/create", tenantHandler.Create)
	tenants.Put("/update/:id", tenantHandler.Update)
	tenants.Get("/findById/:id", tenantHandler.GetByID)
	tenants.Post("/findAll", tenantHandler.List)
	tenants.Delete("/delete/:id", tenantHandler.Delete)

	// Users
	users := api.Group("/user", authn)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/create", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Put("/update/:id", RequireRole(entity.RoleAdmin), userHandler.Update)
	users.Get("/find/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), userHandler.GetByID)
	users.Post("/list", RequireRole(entity.RoleAdmin, entity.RoleManager), userHandler.List)
	users.Delete("/delete/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Products
	products := api.Group("/product", authn)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/create", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Create)
	products.Put("/update/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Update)
	products.Get("/findById/:id", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff), productHandler.GetByID)
	products.Post("/list", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff), productHandler.List)
	products.Delete("/delete/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
}
