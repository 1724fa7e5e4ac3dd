package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
)

// RouterDeps dependencias para montar las rutas del módulo de analítica.
type RouterDeps struct {
	Dashboard *analytics.DashboardUseCase
	Advanced  *analytics.AdvancedUseCase
	Category  *analytics.CategoryUseCase
	JWTSecret string
}

// Router registra las rutas HTTP. Todo /api/analytics requiere token válido
// con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	analyticsHandler := NewAnalyticsHandler(deps.Advanced, deps.Category)

	api := app.Group("/api")

	analyticsGroup := api.Group("/analytics", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))
	analyticsGroup.Get("/", dashboardHandler.GetOverview)
	analyticsGroup.Get("/advanced", analyticsHandler.GetAdvanced)
	analyticsGroup.Get("/category/:categoryName", analyticsHandler.GetCategoryDetail)
}
