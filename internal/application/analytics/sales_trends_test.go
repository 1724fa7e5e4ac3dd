package analytics_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func orderAt(at time.Time, amount int64) entity.Order {
	return entity.Order{CreatedAt: at, TotalAmount: decimal.NewFromInt(amount)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Horas pico
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildPeakHours_OrdenaPorConteoYHora(t *testing.T) {
	day := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(day.Add(9*time.Hour), 10),
		orderAt(day.Add(14*time.Hour), 10),
		orderAt(day.Add(14*time.Hour+30*time.Minute), 10),
		orderAt(day.Add(20*time.Hour), 10), // empate con las 9: gana la hora menor
	}

	buckets := analytics.BuildPeakHours(orders)
	require.Len(t, buckets, 3, "solo aparecen horas con órdenes")

	assert.Equal(t, 14, buckets[0].Hour)
	assert.Equal(t, 2, buckets[0].OrderCount)
	assert.Equal(t, 9, buckets[1].Hour, "en empate de conteo va primero la hora menor")
	assert.Equal(t, 20, buckets[2].Hour)
}

func TestBuildPeakHours_SinOrdenes(t *testing.T) {
	assert.Empty(t, analytics.BuildPeakHours(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tendencias por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCategoryTrends_CuentaPorLinea(t *testing.T) {
	categories := map[string]string{
		"p1": "bebidas",
		"p2": "bebidas",
		"p3": "snacks",
	}
	orders := []entity.Order{
		{Items: []entity.OrderItem{
			// dos líneas de la misma categoría en una orden suman 2 ocurrencias
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		}},
		{Items: []entity.OrderItem{
			{ProductID: "p3", Quantity: 1, UnitPrice: decimal.NewFromInt(3)},
			{ProductID: "ya-no-existe", Quantity: 9, UnitPrice: decimal.NewFromInt(99)},
		}},
	}

	trends := analytics.BuildCategoryTrends(orders, categories)
	require.Len(t, trends, 2, "las líneas de productos eliminados se omiten")

	assert.Equal(t, "bebidas", trends[0].Category)
	assert.Equal(t, 2, trends[0].OrderCount)
	assert.Equal(t, "25", trends[0].TotalRevenue.String())

	assert.Equal(t, "snacks", trends[1].Category)
	assert.Equal(t, 1, trends[1].OrderCount)
	assert.Equal(t, "3", trends[1].TotalRevenue.String())
}

func TestBuildCategoryTrends_EmpateOrdenAlfabetico(t *testing.T) {
	categories := map[string]string{"p1": "zumos", "p2": "aguas"}
	orders := []entity.Order{
		{Items: []entity.OrderItem{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		}},
	}

	trends := analytics.BuildCategoryTrends(orders, categories)
	require.Len(t, trends, 2)
	assert.Equal(t, "aguas", trends[0].Category, "en empate de ingreso el orden es alfabético")
	assert.Equal(t, "zumos", trends[1].Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildDailyTrend_AgrupaPorDia(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeWeek, "", "", fixedNow)
	day1 := time.Date(2026, time.August, 12, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 13, 18, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		orderAt(day1, 100),
		orderAt(day1.Add(2*time.Hour), 50),
		orderAt(day2, 80),
	}

	revenue, counts := analytics.BuildDailyTrend(orders, rng, fixedNow)
	require.Len(t, revenue, 2)
	require.Len(t, counts, 2)

	assert.Equal(t, "2026-08-12", revenue[0].Date, "la serie sale en orden ascendente de fecha")
	assert.Equal(t, "150", revenue[0].Revenue.String())
	assert.Equal(t, 2, counts[0].OrderCount)

	assert.Equal(t, "2026-08-13", revenue[1].Date)
	assert.Equal(t, "80", revenue[1].Revenue.String())
	assert.Equal(t, 1, counts[1].OrderCount)
}

// Sin filtro de fechas la ventana implícita es de 30 días: las órdenes más
// antiguas quedan fuera de la serie.
func TestBuildDailyTrend_SinFiltro_Ventana30Dias(t *testing.T) {
	orders := []entity.Order{
		orderAt(fixedNow.AddDate(0, 0, -45), 999), // fuera de la ventana
		orderAt(fixedNow.AddDate(0, 0, -5), 100),
	}

	revenue, counts := analytics.BuildDailyTrend(orders, analytics.DateRange{}, fixedNow)
	require.Len(t, revenue, 1)
	assert.Equal(t, "100", revenue[0].Revenue.String())
	assert.Equal(t, 1, counts[0].OrderCount)
}

// La serie nunca supera los 30 puntos aunque el rango cubra más días: se
// conservan los más recientes.
func TestBuildDailyTrend_RecortaA30Puntos(t *testing.T) {
	rng := analytics.ResolveDateRange(analytics.RangeYear, "", "", fixedNow)

	var orders []entity.Order
	for i := 0; i < 40; i++ {
		orders = append(orders, orderAt(fixedNow.AddDate(0, 0, -i), int64(i+1)))
	}

	revenue, counts := analytics.BuildDailyTrend(orders, rng, fixedNow)
	assert.LessOrEqual(t, len(revenue), 30)
	assert.Equal(t, len(revenue), len(counts))

	// El último punto debe ser el día más reciente.
	last := revenue[len(revenue)-1]
	assert.Equal(t, fixedNow.Format("2006-01-02"), last.Date)
}

func TestBuildDailyTrend_FechasConFormatoISO(t *testing.T) {
	orders := []entity.Order{orderAt(fixedNow, 10)}
	revenue, _ := analytics.BuildDailyTrend(orders, analytics.DateRange{}, fixedNow)
	require.Len(t, revenue, 1)

	_, err := time.Parse("2006-01-02", revenue[0].Date)
	assert.NoError(t, err, "las fechas de la serie deben ser YYYY-MM-DD, obtuve "+strconv.Quote(revenue[0].Date))
}
