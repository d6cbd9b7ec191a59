package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// TenantHandler handles tenant CRUD. All routes are super_admin only
// (declared in the router).
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler builds the tenant handler.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Create godoc
// @Summary      Create a tenant and its admin user
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "name, company_email"
// @Success      201   {object}  dto.TenantResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenant/create [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" || in.CompanyEmail == "" {
		return badRequest(c, "name and company_email are required")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Rename a tenant
// @Tags         tenant
// @Produce      json
// @Param        id    path  string  true  "tenant id"
// @Success      200   {object}  dto.TenantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenant/update/{id} [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return badRequest(c, "name is required")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Tenant detail with owned users and products
// @Tags         tenant
// @Produce      json
// @Param        id    path  string  true  "tenant id"
// @Success      200   {object}  dto.TenantDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenant/findById/{id} [get]
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Paginated tenant list
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        body  body  listing.Query  true  "page, limit, search, sortBy, sortOrder"
// @Success      200   {object}  dto.TenantListResponse
// @Security     BearerAuth
// @Router       /api/tenant/findAll [post]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	var q listing.Query
	if err := c.BodyParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(q)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a tenant (cascades to users and products)
// @Tags         tenant
// @Produce      json
// @Param        id    path  string  true  "tenant id"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenant/delete/{id} [delete]
func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tenant deleted successfully"})
}
