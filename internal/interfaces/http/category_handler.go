package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja el CRUD de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: "categoría creada exitosamente", Data: out})
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivas"
// @Success      200  {object}  dto.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"
	out, err := h.uc.List(includeInactive)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener categoría por id
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "id de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(dto.Response{Success: true, Message: "categoría actualizada exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar o desactivar categoría (cascada)
// @Tags         categories
// @Produce      json
// @Param        id          path   string  true   "id de la categoría"
// @Param        hardDelete  query  bool    false  "true = eliminación permanente"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	hard := c.Query("hardDelete") == "true"
	out, err := h.uc.Delete(c.Params("id"), hard)
	if err != nil {
		return handleDomainError(c, err)
	}
	msg := "categoría desactivada exitosamente (soft delete)"
	if hard {
		msg = "categoría eliminada permanentemente junto con sus subcategorías y productos"
	}
	return c.JSON(dto.Response{Success: true, Message: msg, Data: out})
}
