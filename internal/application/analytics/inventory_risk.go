package analytics

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Niveles de riesgo de inventario.
const (
	RiskNormal    = "Normal"
	RiskHigh      = "High Risk"
	RiskOverstock = "Overstock"
)

// Textos de alerta (contrato del dashboard).
const (
	alertLowStock   = "Low stock - reorder soon"
	alertNoSales30d = "No sales in over 30 days"
	alertOutOfStock = "Out of stock"
)

const stockoutAlertDays = 7

var seven = decimal.NewFromInt(stockoutAlertDays)

// BuildInventoryHealth calcula velocidad de venta, proyección de agotamiento
// y clasificación de riesgo por producto.
//
// Las reglas se evalúan en orden fijo y el nivel de riesgo se sobreescribe
// (la última regla que aplica gana), mientras las alertas se acumulan:
//  1. agotamiento proyectado en < 7 días con stock > 0 → High Risk
//  2. sin ventas y con más de 30 días de antigüedad → Overstock
//  3. stock en cero con ventas históricas → solo alerta, no cambia el nivel
func BuildInventoryHealth(products []entity.Product, now time.Time) []dto.InventoryHealthDTO {
	rows := make([]dto.InventoryHealthDTO, 0, len(products))
	for _, p := range products {
		days := daysSinceCreated(p.CreatedAt, now)
		avg := decimal.NewFromInt(int64(p.TotalSold)).
			Div(decimal.NewFromInt(int64(days)))

		// nil = sin ritmo de venta, el stock nunca se proyecta agotado
		var stockout *decimal.Decimal
		if avg.IsPositive() {
			d := decimal.NewFromInt(int64(p.Stock)).Div(avg).Round(2)
			stockout = &d
		}

		risk := RiskNormal
		var alerts []string

		if stockout != nil && stockout.LessThan(seven) && p.Stock > 0 {
			risk = RiskHigh
			alerts = append(alerts, alertLowStock)
		}
		if p.TotalSold == 0 && days > 30 {
			risk = RiskOverstock
			alerts = append(alerts, alertNoSales30d)
		}
		if p.Stock == 0 && p.TotalSold > 0 {
			alerts = append(alerts, alertOutOfStock)
		}

		rows = append(rows, dto.InventoryHealthDTO{
			ProductID:         p.ID,
			Stock:             p.Stock,
			TotalSold:         p.TotalSold,
			DaysSinceCreated:  days,
			AverageDailySales: avg.Round(2),
			DaysUntilStockout: stockout,
			RiskLevel:         risk,
			Alerts:            alerts,
		})
	}
	return rows
}

// daysSinceCreated devuelve los días completos desde la creación del
// producto, mínimo 1 para no dividir por cero en productos nuevos.
func daysSinceCreated(createdAt, now time.Time) int {
	days := int(now.Sub(createdAt).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}
