package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// runComparison resuelve el período anterior equivalente y re-ejecuta las
// agregaciones de ingreso, conteo de órdenes y clientes únicos contra él.
// Los filtros de canal y ubicación se conservan; el límite de fechas primario
// no (se reemplaza por el período anterior). Se activa solo cuando hay modo
// de comparación y el filtro primario resolvió a un intervalo concreto.
func (uc *AdvancedUseCase) runComparison(
	ctx context.Context,
	mode string,
	base repository.OrderFilter,
) (*dto.ComparisonDTO, error) {
	prior, ok := ResolveComparisonRange(mode, uc.now())
	if !ok {
		return nil, nil
	}

	filter := base
	filter.Start = prior.Start
	filter.End = prior.End

	type revenueResult struct {
		totals repository.RevenueTotals
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	revCh := make(chan revenueResult, 1)
	ordersCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		totals, err := uc.repo.SumRevenue(ctx, filter)
		revCh <- revenueResult{totals, err}
	}()
	go func() {
		n, err := uc.repo.CountOrders(ctx, filter)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountUniqueCustomers(ctx, filter)
		customersCh <- countResult{n, err}
	}()

	rev := <-revCh
	orders := <-ordersCh
	customers := <-customersCh

	if rev.err != nil {
		return nil, fmt.Errorf("comparación: ingresos: %w", rev.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("comparación: órdenes: %w", orders.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("comparación: clientes: %w", customers.err)
	}

	return &dto.ComparisonDTO{
		PreviousRevenue:   rev.totals.Gross.Round(2),
		PreviousOrders:    orders.n,
		PreviousCustomers: customers.n,
	}, nil
}

// revenueGrowth devuelve (actual - anterior) / anterior * 100 redondeado a 2
// decimales, o cero cuando el período anterior no tuvo ingresos.
func revenueGrowth(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
