package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
)

// SubcategoryHandler maneja el CRUD de subcategorías.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler de subcategorías.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "name, description, category"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: "subcategoría creada exitosamente", Data: out})
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivas"
// @Success      200  {object}  dto.Response
// @Router       /api/subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"
	out, err := h.uc.List(includeInactive)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener subcategoría por id
// @Tags         subcategories
// @Produce      json
// @Param        id  path  string  true  "id de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar subcategoría (parcial)
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(dto.Response{Success: true, Message: "subcategoría actualizada exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar o desactivar subcategoría (cascada sobre productos)
// @Tags         subcategories
// @Produce      json
// @Param        id          path   string  true   "id de la subcategoría"
// @Param        hardDelete  query  bool    false  "true = eliminación permanente"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	hard := c.Query("hardDelete") == "true"
	out, err := h.uc.Delete(c.Params("id"), hard)
	if err != nil {
		return handleDomainError(c, err)
	}
	msg := "subcategoría desactivada exitosamente (soft delete)"
	if hard {
		msg = "subcategoría eliminada permanentemente junto con sus productos"
	}
	return c.JSON(dto.Response{Success: true, Message: msg, Data: out})
}
