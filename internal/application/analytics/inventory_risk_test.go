package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func productCreatedDaysAgo(id string, daysAgo, stock, totalSold int) entity.Product {
	return entity.Product{
		ID:        id,
		Name:      "Producto " + id,
		Category:  "general",
		Price:     decimal.NewFromInt(10),
		Stock:     stock,
		TotalSold: totalSold,
		CreatedAt: fixedNow.AddDate(0, 0, -daysAgo),
	}
}

// Producto sano: ritmo de venta estable y stock para más de una semana.
func TestBuildInventoryHealth_ProductoNormal(t *testing.T) {
	// 60 vendidos en 30 días = 2/día; 40 de stock = 20 días de cobertura.
	p := productCreatedDaysAgo("p1", 30, 40, 60)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, analytics.RiskNormal, row.RiskLevel)
	assert.Empty(t, row.Alerts, "un producto sano no debe tener alertas")
	assert.Equal(t, 30, row.DaysSinceCreated)
	assert.Equal(t, "2", row.AverageDailySales.String())
	require.NotNil(t, row.DaysUntilStockout)
	assert.Equal(t, "20", row.DaysUntilStockout.String())
}

// Agotamiento proyectado en menos de 7 días con stock disponible → High Risk.
func TestBuildInventoryHealth_AgotamientoProximo_HighRisk(t *testing.T) {
	// 60 vendidos en 30 días = 2/día; 3 de stock = 1.5 días de cobertura.
	p := productCreatedDaysAgo("p1", 30, 3, 60)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, analytics.RiskHigh, row.RiskLevel)
	assert.Equal(t, []string{"Low stock - reorder soon"}, row.Alerts)
	require.NotNil(t, row.DaysUntilStockout)
	assert.Equal(t, "1.5", row.DaysUntilStockout.String())
}

// Redondeo de la proyección: 5 de stock a 3/día = 1.67 días (2 decimales).
func TestBuildInventoryHealth_ProyeccionRedondeada(t *testing.T) {
	p := productCreatedDaysAgo("p1", 10, 5, 30)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "3", row.AverageDailySales.String(), "30 vendidos en 10 días")
	require.NotNil(t, row.DaysUntilStockout)
	assert.Equal(t, "1.67", row.DaysUntilStockout.String())
	assert.Equal(t, analytics.RiskHigh, row.RiskLevel)
}

// Sin ventas y con más de 30 días en catálogo → Overstock, y la proyección de
// agotamiento queda en null porque el producto no tiene ritmo de venta.
func TestBuildInventoryHealth_SinVentas_Overstock(t *testing.T) {
	p := productCreatedDaysAgo("p1", 45, 100, 0)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, analytics.RiskOverstock, row.RiskLevel)
	assert.Equal(t, []string{"No sales in over 30 days"}, row.Alerts)
	assert.Nil(t, row.DaysUntilStockout, "sin ventas el stock nunca se proyecta agotado")
	assert.True(t, row.AverageDailySales.IsZero())
}

// Producto nuevo sin ventas: todavía no es Overstock (no cumple los 30 días).
func TestBuildInventoryHealth_ProductoNuevoSinVentas_Normal(t *testing.T) {
	p := productCreatedDaysAgo("p1", 5, 100, 0)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)
	assert.Equal(t, analytics.RiskNormal, rows[0].RiskLevel)
	assert.Empty(t, rows[0].Alerts)
}

// Stock en cero con ventas históricas: solo se acumula la alerta de
// agotamiento, el nivel de riesgo no cambia.
func TestBuildInventoryHealth_StockCero_SoloAlerta(t *testing.T) {
	p := productCreatedDaysAgo("p1", 30, 0, 60)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, analytics.RiskNormal, row.RiskLevel,
		"stock en cero no activa High Risk: la regla exige stock > 0")
	assert.Equal(t, []string{"Out of stock"}, row.Alerts)
}

// Producto recién creado: los días desde creación nunca bajan de 1 para no
// dividir por cero.
func TestBuildInventoryHealth_ProductoDeHoy_MinimoUnDia(t *testing.T) {
	p := productCreatedDaysAgo("p1", 0, 10, 4)
	p.CreatedAt = fixedNow.Add(-2 * time.Hour)

	rows := analytics.BuildInventoryHealth([]entity.Product{p}, fixedNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.DaysSinceCreated)
	assert.Equal(t, "4", row.AverageDailySales.String(), "4 vendidos en 1 día")
	require.NotNil(t, row.DaysUntilStockout)
	assert.Equal(t, "2.5", row.DaysUntilStockout.String())
	assert.Equal(t, analytics.RiskHigh, row.RiskLevel)
}
