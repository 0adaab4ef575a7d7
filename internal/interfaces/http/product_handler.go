package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
)

// ProductHandler maneja el CRUD de productos. created_by se oculta a los
// llamadores autenticados con rol auxiliar.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, description, price, stock, category, subcategory"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: "producto creado exitosamente", Data: out})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivos"
// @Success      200  {object}  dto.Response
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"
	out, err := h.uc.List(includeInactive)
	if err != nil {
		return handleDomainError(c, err)
	}
	if GetRole(c) == entity.RoleAuxiliar {
		for i := range out {
			out[i].CreatedBy = ""
		}
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if GetRole(c) == entity.RoleAuxiliar {
		out.CreatedBy = ""
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.Response{Success: true, Message: "producto actualizado exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar o desactivar producto
// @Tags         products
// @Produce      json
// @Param        id          path   string  true   "id del producto"
// @Param        hardDelete  query  bool    false  "true = eliminación permanente"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	hard := c.Query("hardDelete") == "true"
	out, err := h.uc.Delete(c.Params("id"), hard)
	if err != nil {
		return handleDomainError(c, err)
	}
	msg := "producto desactivado exitosamente (soft delete)"
	if hard {
		msg = "producto eliminado permanentemente de la base de datos"
	}
	return c.JSON(dto.Response{Success: true, Message: msg, Data: out})
}
