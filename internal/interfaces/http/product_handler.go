package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// ProductHandler handles product CRUD and listing.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler builds the product handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Create a product owned by the caller's tenant
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, description, price"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/product/create [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" {
		return badRequest(c, "name is required")
	}
	out, err := h.uc.Create(PrincipalFromCtx(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Partially update a product within the caller's tenant
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "product id"
// @Param        body  body  dto.UpdateProductRequest  true  "name, description, price (all optional)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/product/update/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(PrincipalFromCtx(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Product detail with owning tenant
// @Tags         product
// @Produce      json
// @Param        id    path  string  true  "product id"
// @Success      200   {object}  dto.ProductDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/product/findById/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(PrincipalFromCtx(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Paginated product list under the caller's tenant
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body  listing.Query  true  "page, limit, search, sortBy, sortOrder"
// @Success      200   {object}  dto.ProductListResponse
// @Security     BearerAuth
// @Router       /api/product/list [post]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q listing.Query
	if err := c.BodyParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(PrincipalFromCtx(c), q)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a product within the caller's tenant
// @Tags         product
// @Produce      json
// @Param        id    path  string  true  "product id"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/product/delete/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(PrincipalFromCtx(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
