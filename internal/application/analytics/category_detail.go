package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const categoryTopProducts = 3

// CategoryUseCase arma el detalle de una categoría: ingresos, valor de
// inventario, velocidad de venta, productos destacados y peso relativo sobre
// el ingreso total histórico de la tienda.
type CategoryUseCase struct {
	repo repository.AnalyticsRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.AnalyticsRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// GetDetail devuelve el detalle de la categoría. Una categoría sin productos
// devuelve la forma en ceros, no un error.
func (uc *CategoryUseCase) GetDetail(ctx context.Context, categoryName string) (*dto.CategoryDetailDTO, error) {
	products, err := uc.repo.ListProductsByCategory(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("detalle de categoría: productos: %w", err)
	}
	if len(products) == 0 {
		return emptyCategoryDetail(categoryName), nil
	}

	storeRevenue, err := uc.repo.TotalStoreRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("detalle de categoría: ingreso total: %w", err)
	}

	detail := buildCategoryDetail(categoryName, products, storeRevenue)
	return &detail, nil
}

// buildCategoryDetail calcula las métricas de la categoría a partir de sus
// productos y del ingreso histórico total de la tienda.
func buildCategoryDetail(name string, products []entity.Product, storeRevenue decimal.Decimal) dto.CategoryDetailDTO {
	var revenue, inventoryValue decimal.Decimal
	velocity := 0

	top := make([]dto.CategoryTopProductDTO, 0, len(products))
	for _, p := range products {
		productRevenue := p.LifetimeRevenue()
		revenue = revenue.Add(productRevenue)
		inventoryValue = inventoryValue.Add(p.InventoryValue())
		velocity += p.TotalSold
		top = append(top, dto.CategoryTopProductDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Revenue:   productRevenue.Round(2),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > categoryTopProducts {
		top = top[:categoryTopProducts]
	}

	score := decimal.Zero
	if revenue.IsPositive() && storeRevenue.IsPositive() {
		score = revenue.Div(storeRevenue).Mul(hundred).Round(2)
	}

	return dto.CategoryDetailDTO{
		CategoryName:        name,
		CategoryRevenue:     revenue.Round(2),
		TotalInventoryValue: inventoryValue.Round(2),
		SalesVelocity:       velocity,
		TopProducts:         top,
		PerformanceScore:    score,
		ProductCount:        len(products),
	}
}

func emptyCategoryDetail(name string) *dto.CategoryDetailDTO {
	return &dto.CategoryDetailDTO{
		CategoryName:        name,
		CategoryRevenue:     decimal.Zero,
		TotalInventoryValue: decimal.Zero,
		SalesVelocity:       0,
		TopProducts:         []dto.CategoryTopProductDTO{},
		PerformanceScore:    decimal.Zero,
		ProductCount:        0,
	}
}
