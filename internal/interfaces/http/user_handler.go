package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios. Las reglas por rol
// (auxiliar solo se ve a sí mismo, coordinador no ve admins, solo un admin
// elimina admins) viven en el caso de uso; el handler solo extrae el llamador
// del contexto.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios visibles para el llamador
// @Tags         users
// @Produce      json
// @Param        includeInactive  query  bool  false  "incluir inactivos"
// @Success      200  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"
	out, err := h.uc.List(GetRole(c), GetUserID(c), includeInactive)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener usuario por id
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "id del usuario"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetRole(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetRole(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "usuario actualizado exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar o desactivar usuario
// @Tags         users
// @Produce      json
// @Param        id          path   string  true   "id del usuario"
// @Param        hardDelete  query  bool    false  "true = eliminación permanente"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	hard := c.Query("hardDelete") == "true"
	out, err := h.uc.Delete(GetRole(c), c.Params("id"), hard)
	if err != nil {
		return handleDomainError(c, err)
	}
	msg := "usuario desactivado exitosamente (soft delete)"
	if hard {
		msg = "usuario eliminado permanentemente de la base de datos"
	}
	return c.JSON(dto.Response{Success: true, Message: msg, Data: out})
}
