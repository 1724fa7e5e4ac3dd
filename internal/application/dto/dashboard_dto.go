package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverviewDTO respuesta de GET /api/analytics: KPIs generales de la
// tienda más las últimas órdenes y la serie de ventas de los últimos 30 días.
type DashboardOverviewDTO struct {
	TotalSales         decimal.Decimal      `json:"totalSales"`
	OrderCount         int                  `json:"orderCount"`
	PendingOrdersCount int                  `json:"pendingOrdersCount"`
	LowStockProducts   []LowStockProductDTO `json:"lowStockProducts"`
	LatestOrders       []LatestOrderDTO     `json:"latestOrders"` // 5, más reciente primero
	SalesOverTime      []SalesPointDTO      `json:"salesOverTime"` // ≤30 puntos, asc por fecha
}

// LowStockProductDTO producto con stock bajo el umbral configurado.
type LowStockProductDTO struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// LatestOrderDTO resumen de una orden reciente para el widget del dashboard.
type LatestOrderDTO struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SalesPointDTO ventas y órdenes de un día calendario.
type SalesPointDTO struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	TotalSales decimal.Decimal `json:"totalSales"`
	OrderCount int             `json:"orderCount"`
}
