package dto

import "github.com/shopspring/decimal"

// Los nombres JSON de este archivo son contrato público del dashboard de
// administración (camelCase); no renombrar sin versionar el API.

// ── Query parameters ──────────────────────────────────────────────────────────

// AdvancedReportRequest parámetros para GET /api/analytics/advanced.
type AdvancedReportRequest struct {
	DateRange      string `query:"dateRange"`      // today|week|month|30days|quarter|year|custom|all (default all)
	CustomStart    string `query:"customStart"`    // YYYY-MM-DD, solo con dateRange=custom
	CustomEnd      string `query:"customEnd"`      // YYYY-MM-DD, solo con dateRange=custom
	CategoryFilter string `query:"categoryFilter"` // categoría exacta
	ProductFilter  string `query:"productFilter"`  // ID de producto
	LocationFilter string `query:"locationFilter"` // subcadena de dirección, sin mayúsculas/minúsculas
	ChannelFilter  string `query:"channelFilter"`  // all|delivery|pickup
	ComparisonMode string `query:"comparisonMode"` // week|month|year; vacío = sin comparación
}

// ── Rendimiento por producto ──────────────────────────────────────────────────

// ProductPerformanceDTO métricas de vistas/carrito/ventas por producto.
// Con filtro de fechas activo, TotalSold y RevenueGenerated se re-derivan de
// las líneas de órdenes dentro del período; sin filtro usan los contadores
// históricos del producto.
type ProductPerformanceDTO struct {
	ProductID        string          `json:"productId"`
	Views            int             `json:"views"`
	AddToCartCount   int             `json:"addToCartCount"`
	TotalSold        int             `json:"totalSold"`
	ConversionRate   decimal.Decimal `json:"conversionRate"` // totalSold / views * 100, 0 si views = 0
	RevenueGenerated decimal.Decimal `json:"revenueGenerated"`
}

// ── Salud de inventario ───────────────────────────────────────────────────────

// InventoryHealthDTO proyección de agotamiento y clasificación de riesgo.
type InventoryHealthDTO struct {
	ProductID         string           `json:"productId"`
	Stock             int              `json:"stock"`
	TotalSold         int              `json:"totalSold"`
	DaysSinceCreated  int              `json:"daysSinceCreated"` // ≥1
	AverageDailySales decimal.Decimal  `json:"averageDailySales"`
	DaysUntilStockout *decimal.Decimal `json:"daysUntilStockout"` // null = sin ventas, nunca se agota
	RiskLevel         string           `json:"riskLevel"`         // Normal | High Risk | Overstock
	Alerts            []string         `json:"alerts"`
}

// ── Tendencias de venta ───────────────────────────────────────────────────────

// PeakHourDTO órdenes por hora del día (solo horas con órdenes).
type PeakHourDTO struct {
	Hour       int `json:"hour"` // 0–23
	OrderCount int `json:"orderCount"`
}

// CategoryTrendDTO ingresos por categoría. OrderCount cuenta líneas de orden,
// no órdenes: una orden con N líneas de la misma categoría suma N.
type CategoryTrendDTO struct {
	Category     string          `json:"category"`
	OrderCount   int             `json:"orderCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// RevenueTrendPointDTO ingreso de un día calendario.
type RevenueTrendPointDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}

// OrdersTrendPointDTO órdenes de un día calendario.
type OrdersTrendPointDTO struct {
	Date       string `json:"date"` // YYYY-MM-DD
	OrderCount int    `json:"orderCount"`
}

// SalesTrendsDTO sección de tendencias del reporte avanzado.
type SalesTrendsDTO struct {
	PeakHours     []PeakHourDTO          `json:"peakHours"`     // desc por conteo
	TopCategories []CategoryTrendDTO     `json:"topCategories"` // desc por ingreso
	RevenueTrend  []RevenueTrendPointDTO `json:"revenueTrend"`  // asc por fecha, ≤30 puntos
	OrdersTrend   []OrdersTrendPointDTO  `json:"ordersTrend"`   // asc por fecha, ≤30 puntos
}

// ── Insights de órdenes ───────────────────────────────────────────────────────

// DeliveryLocationDTO zona de entrega con conteo de órdenes.
type DeliveryLocationDTO struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// OrderInsightsDTO conciliación de ingresos y métricas operativas del período.
type OrderInsightsDTO struct {
	DeliveryPerformance  decimal.Decimal       `json:"deliveryPerformance"` // entregadas / total * 100
	TotalGrossRevenue    decimal.Decimal       `json:"totalGrossRevenue"`
	TotalOriginalAmount  decimal.Decimal       `json:"totalOriginalAmount"`
	TotalDiscountAmount  decimal.Decimal       `json:"totalDiscountAmount"`
	NetRevenue           decimal.Decimal       `json:"netRevenue"` // original - descuentos
	TotalOrders          int                   `json:"totalOrders"`
	DeliveredOrders      int                   `json:"deliveredOrders"`
	PendingOrders        int                   `json:"pendingOrders"`
	UniqueCustomers      int                   `json:"uniqueCustomers"`
	AvgRevenuePerDay     decimal.Decimal       `json:"avgRevenuePerDay"`
	RevenueGrowth        decimal.Decimal       `json:"revenueGrowth"` // % vs período anterior; 0 sin comparación
	StatusBreakdown      map[string]int        `json:"statusBreakdown"`
	TopDeliveryLocations []DeliveryLocationDTO `json:"topDeliveryLocations"` // top 10 desc
}

// ── Comparación de períodos ───────────────────────────────────────────────────

// ComparisonDTO totales del período anterior equivalente.
type ComparisonDTO struct {
	PreviousRevenue   decimal.Decimal `json:"previousRevenue"`
	PreviousOrders    int             `json:"previousOrders"`
	PreviousCustomers int             `json:"previousCustomers"`
}

// ── Reporte combinado ─────────────────────────────────────────────────────────

// AdvancedReportDTO respuesta completa de GET /api/analytics/advanced.
type AdvancedReportDTO struct {
	ProductPerformance []ProductPerformanceDTO `json:"productPerformance"`
	InventoryHealth    []InventoryHealthDTO    `json:"inventoryHealth"`
	SalesTrends        SalesTrendsDTO          `json:"salesTrends"`
	OrderInsights      OrderInsightsDTO        `json:"orderInsights"`
	Comparison         *ComparisonDTO          `json:"comparison"` // null sin modo de comparación
}

// ── Detalle de categoría ──────────────────────────────────────────────────────

// CategoryTopProductDTO producto destacado dentro de una categoría.
type CategoryTopProductDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryDetailDTO respuesta de GET /api/analytics/category/:categoryName.
// Categoría sin productos devuelve la forma en ceros, nunca 404.
type CategoryDetailDTO struct {
	CategoryName        string                  `json:"categoryName"`
	CategoryRevenue     decimal.Decimal         `json:"categoryRevenue"`
	TotalInventoryValue decimal.Decimal         `json:"totalInventoryValue"`
	SalesVelocity       int                     `json:"salesVelocity"`
	TopProducts         []CategoryTopProductDTO `json:"topProducts"` // máx 3
	PerformanceScore    decimal.Decimal         `json:"performanceScore"` // % del ingreso total de la tienda
	ProductCount        int                     `json:"productCount"`
}
