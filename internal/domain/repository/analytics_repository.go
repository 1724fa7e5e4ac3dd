package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderFilter restringe las consultas sobre órdenes. Los campos en cero no
// aplican filtro. Location se compara como subcadena de la dirección, sin
// distinguir mayúsculas.
type OrderFilter struct {
	Start        *time.Time
	End          *time.Time
	DeliveryType string // "" = todos los canales; delivery | pickup
	Location     string
	Status       entity.OrderStatus
}

// WithStatus devuelve una copia del filtro restringida a un estado.
func (f OrderFilter) WithStatus(status entity.OrderStatus) OrderFilter {
	f.Status = status
	return f
}

// RevenueTotals resultado crudo de la agregación de ingresos de órdenes.
// Los montos opcionales llegan ya coalescidos: Original usa TotalAmount
// cuando la orden no trae monto original, Discount usa cero.
type RevenueTotals struct {
	Gross    decimal.Decimal // Σ total_amount
	Original decimal.Decimal // Σ COALESCE(original_amount, total_amount)
	Discount decimal.Decimal // Σ COALESCE(discount_amount, 0)
}

// StatusCount órdenes por estado.
type StatusCount struct {
	Status string
	Count  int
}

// DailyOrderGroup agregado de órdenes por día calendario.
type DailyOrderGroup struct {
	Day     time.Time
	Revenue decimal.Decimal
	Orders  int
}

// AnalyticsRepository es el puerto de lectura del motor de analítica sobre
// los registros de productos y órdenes. Las implementaciones son read-only:
// búsqueda filtrada, conteo filtrado y agregaciones (suma, agrupado por
// fecha, agrupado por llave). El motor nunca escribe a través de este puerto.
type AnalyticsRepository interface {
	// ListProducts devuelve todos los productos del catálogo.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListProductsByCategory devuelve los productos de una categoría exacta.
	// Categoría inexistente devuelve lista vacía, no error.
	ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)

	// ListOrders devuelve las órdenes que cumplen el filtro, con sus líneas.
	ListOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error)

	// CountOrders cuenta las órdenes que cumplen el filtro.
	CountOrders(ctx context.Context, filter OrderFilter) (int, error)

	// SumRevenue agrega los montos de las órdenes que cumplen el filtro.
	// Devuelve ceros si ninguna orden coincide.
	SumRevenue(ctx context.Context, filter OrderFilter) (RevenueTotals, error)

	// CountUniqueCustomers cuenta clientes distintos entre las órdenes del
	// filtro, agrupando por usuario registrado o, en su defecto, teléfono.
	CountUniqueCustomers(ctx context.Context, filter OrderFilter) (int, error)

	// GroupOrdersByDay agrega ingresos y conteo de órdenes por día calendario,
	// en orden ascendente de fecha.
	GroupOrdersByDay(ctx context.Context, filter OrderFilter) ([]DailyOrderGroup, error)

	// CountOrdersByStatus cuenta órdenes por estado dentro del filtro.
	CountOrdersByStatus(ctx context.Context, filter OrderFilter) ([]StatusCount, error)

	// EarliestOrderDate devuelve la fecha de la primera orden registrada,
	// o nil si no existen órdenes.
	EarliestOrderDate(ctx context.Context) (*time.Time, error)

	// LatestOrders devuelve las últimas n órdenes, de la más reciente a la
	// más antigua, sin líneas.
	LatestOrders(ctx context.Context, n int) ([]entity.Order, error)

	// LowStockProducts devuelve los productos con stock ≤ threshold,
	// ordenados de menor a mayor stock.
	LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error)

	// TotalStoreRevenue devuelve el ingreso histórico de toda la tienda
	// (Σ precio × unidades vendidas sobre el catálogo completo).
	TotalStoreRevenue(ctx context.Context) (decimal.Decimal, error)
}
