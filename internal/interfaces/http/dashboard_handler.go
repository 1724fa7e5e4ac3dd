package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// DashboardHandler maneja el resumen operativo del panel de administración.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetOverview godoc
// @Summary      Resumen del dashboard
// @Description  KPIs de ventas, órdenes pendientes, stock bajo, últimas órdenes y serie de ventas de los últimos 30 días
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardOverviewDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.uc.GetOverview(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("error generando resumen del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error generando el resumen del dashboard",
		})
	}
	return c.JSON(overview)
}
