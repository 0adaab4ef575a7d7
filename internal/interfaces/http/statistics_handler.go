package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
)

// StatisticsHandler totales del catálogo para el dashboard.
type StatisticsHandler struct {
	uc *usecase.StatisticsUseCase
}

// NewStatisticsHandler construye el handler de estadísticas.
func NewStatisticsHandler(uc *usecase.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Get godoc
// @Summary      Totales de usuarios, productos, categorías y subcategorías
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/statistics [get]
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}
