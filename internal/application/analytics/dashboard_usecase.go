package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

const latestOrdersCount = 5

// DashboardUseCase genera el resumen general del dashboard de administración:
// KPIs de toda la historia de la tienda, widget de stock bajo, últimas
// órdenes y serie de ventas de los últimos 30 días.
type DashboardUseCase struct {
	repo              repository.AnalyticsRepository
	lowStockThreshold int
	now               func() time.Time
}

// NewDashboardUseCase construye el caso de uso. threshold define el stock
// máximo para aparecer en el widget de stock bajo.
func NewDashboardUseCase(repo repository.AnalyticsRepository, threshold int) *DashboardUseCase {
	if threshold < 0 {
		threshold = 0
	}
	return &DashboardUseCase{repo: repo, lowStockThreshold: threshold, now: time.Now}
}

// GetOverview arma el DashboardOverviewDTO.
//
// Cuatro grupos de consultas en paralelo:
//  1. KPIs (ingreso total, órdenes totales, órdenes pendientes)
//  2. Productos con stock bajo
//  3. Últimas 5 órdenes
//  4. Serie diaria de ventas de los últimos 30 días
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.DashboardOverviewDTO, error) {
	type kpisResult struct {
		totals  repository.RevenueTotals
		orders  int
		pending int
		err     error
	}
	type lowStockResult struct {
		products []entity.Product
		err      error
	}
	type latestResult struct {
		orders []entity.Order
		err    error
	}
	type seriesResult struct {
		groups []repository.DailyOrderGroup
		err    error
	}

	kpisCh := make(chan kpisResult, 1)
	lowStockCh := make(chan lowStockResult, 1)
	latestCh := make(chan latestResult, 1)
	seriesCh := make(chan seriesResult, 1)

	go func() {
		var res kpisResult
		res.totals, res.err = uc.repo.SumRevenue(ctx, repository.OrderFilter{})
		if res.err == nil {
			res.orders, res.err = uc.repo.CountOrders(ctx, repository.OrderFilter{})
		}
		if res.err == nil {
			res.pending, res.err = uc.repo.CountOrders(ctx,
				repository.OrderFilter{Status: entity.StatusPending})
		}
		kpisCh <- res
	}()
	go func() {
		products, err := uc.repo.LowStockProducts(ctx, uc.lowStockThreshold)
		lowStockCh <- lowStockResult{products, err}
	}()
	go func() {
		orders, err := uc.repo.LatestOrders(ctx, latestOrdersCount)
		latestCh <- latestResult{orders, err}
	}()
	go func() {
		start := startOfDay(uc.now().AddDate(0, 0, -maxTrendPoints))
		groups, err := uc.repo.GroupOrdersByDay(ctx, repository.OrderFilter{Start: &start})
		seriesCh <- seriesResult{groups, err}
	}()

	kpis := <-kpisCh
	lowStock := <-lowStockCh
	latest := <-latestCh
	series := <-seriesCh

	if kpis.err != nil {
		return nil, fmt.Errorf("dashboard: KPIs: %w", kpis.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if latest.err != nil {
		return nil, fmt.Errorf("dashboard: últimas órdenes: %w", latest.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie de ventas: %w", series.err)
	}

	lowStockProducts := make([]dto.LowStockProductDTO, 0, len(lowStock.products))
	for _, p := range lowStock.products {
		lowStockProducts = append(lowStockProducts, dto.LowStockProductDTO{
			Name:  p.Name,
			Stock: p.Stock,
		})
	}

	latestOrders := make([]dto.LatestOrderDTO, 0, len(latest.orders))
	for _, o := range latest.orders {
		latestOrders = append(latestOrders, dto.LatestOrderDTO{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			CreatedAt:   o.CreatedAt,
			Status:      string(o.Status),
			TotalAmount: o.TotalAmount.Round(2),
		})
	}

	points := series.groups
	if len(points) > maxTrendPoints {
		points = points[len(points)-maxTrendPoints:]
	}
	salesOverTime := make([]dto.SalesPointDTO, 0, len(points))
	for _, g := range points {
		salesOverTime = append(salesOverTime, dto.SalesPointDTO{
			Date:       g.Day.Format(customDateLayout),
			TotalSales: g.Revenue.Round(2),
			OrderCount: g.Orders,
		})
	}

	return &dto.DashboardOverviewDTO{
		TotalSales:         kpis.totals.Gross.Round(2),
		OrderCount:         kpis.orders,
		PendingOrdersCount: kpis.pending,
		LowStockProducts:   lowStockProducts,
		LatestOrders:       latestOrders,
		SalesOverTime:      salesOverTime,
	}, nil
}
