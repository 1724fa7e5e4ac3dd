package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// AnalyticsHandler maneja el reporte avanzado y el detalle por categoría.
type AnalyticsHandler struct {
	advanced *analytics.AdvancedUseCase
	category *analytics.CategoryUseCase
}

func NewAnalyticsHandler(advanced *analytics.AdvancedUseCase, category *analytics.CategoryUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{advanced: advanced, category: category}
}

// GetAdvanced godoc
// @Summary      Reporte analítico avanzado
// @Description  Rendimiento de productos, salud de inventario, tendencias de ventas, insights de órdenes y comparación con período anterior
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        dateRange       query  string  false  "today | week | month | 30days | quarter | year | custom | all"
// @Param        customStart     query  string  false  "Fecha inicial YYYY-MM-DD (con dateRange=custom)"
// @Param        customEnd       query  string  false  "Fecha final YYYY-MM-DD (con dateRange=custom)"
// @Param        categoryFilter  query  string  false  "Nombre de categoría"
// @Param        productFilter   query  string  false  "ID de producto"
// @Param        locationFilter  query  string  false  "Subcadena de dirección de entrega"
// @Param        channelFilter   query  string  false  "delivery | pickup | all"
// @Param        comparisonMode  query  string  false  "week | month | year"
// @Success      200  {object}  dto.AdvancedReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/advanced [get]
func (h *AnalyticsHandler) GetAdvanced(c *fiber.Ctx) error {
	var req dto.AdvancedReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_PARAMS",
			Message: "Parámetros de consulta inválidos",
		})
	}

	report, err := h.advanced.GetReport(c.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("error generando reporte avanzado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error generando el reporte avanzado",
		})
	}
	return c.JSON(report)
}

// GetCategoryDetail godoc
// @Summary      Detalle analítico de una categoría
// @Description  Revenue, valor de inventario, velocidad de venta, top productos y score de participación de la categoría
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        categoryName  path  string  true  "Nombre de la categoría"
// @Success      200  {object}  dto.CategoryDetailDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/category/{categoryName} [get]
func (h *AnalyticsHandler) GetCategoryDetail(c *fiber.Ctx) error {
	categoryName := c.Params("categoryName")

	detail, err := h.category.GetDetail(c.Context(), categoryName)
	if err != nil {
		log.Error().Err(err).Str("category", categoryName).Msg("error generando detalle de categoría")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Error generando el detalle de la categoría",
		})
	}
	return c.JSON(detail)
}
