package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// AdvancedUseCase orquesta el reporte avanzado de analítica: resuelve el
// rango de fechas, lanza las consultas independientes en paralelo y combina
// las cuatro secciones de métricas más la comparación opcional.
//
// El caso de uso es stateless entre peticiones; todo valor derivado se
// construye de nuevo en cada llamada.
type AdvancedUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAdvancedUseCase construye el caso de uso.
func NewAdvancedUseCase(repo repository.AnalyticsRepository) *AdvancedUseCase {
	return &AdvancedUseCase{repo: repo, now: time.Now}
}

// GetReport genera el reporte avanzado completo para los filtros dados.
// Cualquier fallo de una consulta del puerto de lectura falla la petición
// completa; nunca se devuelven resultados parciales.
func (uc *AdvancedUseCase) GetReport(ctx context.Context, req dto.AdvancedReportRequest) (*dto.AdvancedReportDTO, error) {
	now := uc.now()
	rng := ResolveDateRange(req.DateRange, req.CustomStart, req.CustomEnd, now)

	base := repository.OrderFilter{
		Start:        rng.Start,
		End:          rng.End,
		DeliveryType: channelFilter(req.ChannelFilter),
		Location:     req.LocationFilter,
	}

	// ── Consultas independientes en paralelo ──────────────────────────────────
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type countsResult struct {
		total, delivered, pending int
		err                       error
	}
	type totalsResult struct {
		totals repository.RevenueTotals
		err    error
	}
	type statusResult struct {
		counts []repository.StatusCount
		err    error
	}
	type earliestResult struct {
		at  *time.Time
		err error
	}

	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	countsCh := make(chan countsResult, 1)
	totalsCh := make(chan totalsResult, 1)
	statusCh := make(chan statusResult, 1)
	earliestCh := make(chan earliestResult, 1)

	go func() {
		products, err := uc.repo.ListProducts(ctx)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		orders, err := uc.repo.ListOrders(ctx, base)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		var res countsResult
		res.total, res.err = uc.repo.CountOrders(ctx, base)
		if res.err == nil {
			res.delivered, res.err = uc.repo.CountOrders(ctx, base.WithStatus(entity.StatusDelivered))
		}
		if res.err == nil {
			res.pending, res.err = uc.repo.CountOrders(ctx, base.WithStatus(entity.StatusPending))
		}
		countsCh <- res
	}()
	go func() {
		totals, err := uc.repo.SumRevenue(ctx, base)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		counts, err := uc.repo.CountOrdersByStatus(ctx, base)
		statusCh <- statusResult{counts, err}
	}()
	go func() {
		// la fecha de la primera orden solo se usa sin filtro de fechas
		var res earliestResult
		if !rng.Bounded() {
			res.at, res.err = uc.repo.EarliestOrderDate(ctx)
		}
		earliestCh <- res
	}()

	products := <-productsCh
	orders := <-ordersCh
	counts := <-countsCh
	totals := <-totalsCh
	status := <-statusCh
	earliest := <-earliestCh

	if products.err != nil {
		return nil, fmt.Errorf("reporte avanzado: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("reporte avanzado: órdenes: %w", orders.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("reporte avanzado: conteos: %w", counts.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("reporte avanzado: ingresos: %w", totals.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("reporte avanzado: estados: %w", status.err)
	}
	if earliest.err != nil {
		return nil, fmt.Errorf("reporte avanzado: primera orden: %w", earliest.err)
	}

	// ── Secciones de métricas ─────────────────────────────────────────────────
	scoped := filterProducts(products.products, req.CategoryFilter, req.ProductFilter)

	categoryByProduct := make(map[string]string, len(products.products))
	for _, p := range products.products {
		categoryByProduct[p.ID] = p.Category
	}

	revenueTrend, ordersTrend := BuildDailyTrend(orders.orders, rng, now)
	insights := buildOrderInsights(insightInputs{
		orders:       orders.orders,
		totals:       totals.totals,
		totalOrders:  counts.total,
		delivered:    counts.delivered,
		pending:      counts.pending,
		statusCounts: status.counts,
		earliest:     earliest.at,
	}, rng, now)

	report := &dto.AdvancedReportDTO{
		ProductPerformance: BuildProductPerformance(scoped, orders.orders, rng.Bounded()),
		InventoryHealth:    BuildInventoryHealth(scoped, now),
		SalesTrends: dto.SalesTrendsDTO{
			PeakHours:     BuildPeakHours(orders.orders),
			TopCategories: BuildCategoryTrends(orders.orders, categoryByProduct),
			RevenueTrend:  revenueTrend,
			OrdersTrend:   ordersTrend,
		},
		OrderInsights: insights,
	}

	// ── Comparación opcional contra el período anterior ───────────────────────
	if req.ComparisonMode != "" && rng.Bounded() {
		comparison, err := uc.runComparison(ctx, req.ComparisonMode, base)
		if err != nil {
			return nil, err
		}
		if comparison != nil {
			report.Comparison = comparison
			report.OrderInsights.RevenueGrowth = revenueGrowth(
				insights.TotalGrossRevenue, comparison.PreviousRevenue)
		}
	}

	return report, nil
}

// channelFilter traduce el parámetro channelFilter al filtro del puerto:
// "all", vacío o un valor desconocido no restringen el canal.
func channelFilter(channel string) string {
	switch channel {
	case entity.DeliveryTypeDelivery, entity.DeliveryTypePickup:
		return channel
	default:
		return ""
	}
}

// filterProducts restringe el conjunto de productos de las secciones de
// rendimiento e inventario según los filtros de categoría y producto.
func filterProducts(products []entity.Product, category, productID string) []entity.Product {
	if category == "" && productID == "" {
		return products
	}
	scoped := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if productID != "" && p.ID != productID {
			continue
		}
		scoped = append(scoped, p)
	}
	return scoped
}
