package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
)

// UserHandler handles tenant-user CRUD and listing.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the user handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Create a user in the caller's tenant
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, phone, address, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/user/create [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return badRequest(c, "name, email and role are required")
	}
	out, err := h.uc.Create(PrincipalFromCtx(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a user within the caller's tenant
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Param        body  body  dto.UpdateUserRequest  true  "name, phone, address, role"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/user/update/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" || in.Role == "" {
		return badRequest(c, "name and role are required")
	}
	out, err := h.uc.Update(PrincipalFromCtx(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      User detail with owning tenant
// @Tags         user
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Success      200   {object}  dto.UserDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/user/find/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(PrincipalFromCtx(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Paginated user list under the caller's visibility
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  listing.Query  true  "page, limit, search, sortBy, sortOrder"
// @Success      200   {object}  dto.UserListResponse
// @Security     BearerAuth
// @Router       /api/user/list [post]
func (h *UserHandler) List(c *fiber.Ctx) error {
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
// @Summary      Delete a user within the caller's tenant
// @Tags         user
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/user/delete/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(PrincipalFromCtx(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
