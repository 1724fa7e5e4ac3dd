package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func TestGetDetail(t *testing.T) {
	repo := seedRepo()
	// Tercer producto en bebidas para ejercitar el top y los acumulados.
	repo.products = append(repo.products, entity.Product{
		ID: "p3", Name: "Té verde", Category: "bebidas",
		Price: decimal.NewFromInt(8), Stock: 10, TotalSold: 10,
		CreatedAt: reportNow.AddDate(0, 0, -20),
	})
	uc := NewCategoryUseCase(repo)

	detail, err := uc.GetDetail(context.Background(), "bebidas")
	require.NoError(t, err)

	// p1: 20×30 = 600; p3: 8×10 = 80.
	assert.Equal(t, "bebidas", detail.CategoryName)
	assert.Equal(t, "680", detail.CategoryRevenue.String())
	// Inventario: 20×50 + 8×10 = 1080.
	assert.Equal(t, "1080", detail.TotalInventoryValue.String())
	assert.Equal(t, 40, detail.SalesVelocity, "30 + 10 unidades vendidas")
	assert.Equal(t, 2, detail.ProductCount)

	require.Len(t, detail.TopProducts, 2)
	assert.Equal(t, "Café 500g", detail.TopProducts[0].Name)
	assert.Equal(t, "600", detail.TopProducts[0].Revenue.String())

	// Ingreso total de la tienda: 600 + 400 + 80 = 1080 → 680/1080 ≈ 62.96%.
	assert.Equal(t, "62.96", detail.PerformanceScore.String())
}

func TestGetDetail_TopLimitadoATres(t *testing.T) {
	repo := &fakeRepo{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		repo.products = append(repo.products, entity.Product{
			ID: id, Name: id, Category: "misc",
			Price: decimal.NewFromInt(10), TotalSold: 1,
		})
	}
	uc := NewCategoryUseCase(repo)

	detail, err := uc.GetDetail(context.Background(), "misc")
	require.NoError(t, err)
	assert.Len(t, detail.TopProducts, 3)
	assert.Equal(t, 5, detail.ProductCount)
}

// Categoría sin productos: forma completa en ceros, nunca un error ni un 404.
func TestGetDetail_CategoriaVacia(t *testing.T) {
	uc := NewCategoryUseCase(seedRepo())

	detail, err := uc.GetDetail(context.Background(), "no-existe")
	require.NoError(t, err)

	assert.Equal(t, "no-existe", detail.CategoryName)
	assert.True(t, detail.CategoryRevenue.IsZero())
	assert.True(t, detail.TotalInventoryValue.IsZero())
	assert.Equal(t, 0, detail.SalesVelocity)
	assert.NotNil(t, detail.TopProducts, "la lista debe serializar como [] y no como null")
	assert.Empty(t, detail.TopProducts)
	assert.True(t, detail.PerformanceScore.IsZero())
	assert.Equal(t, 0, detail.ProductCount)
}

// Tienda sin ventas históricas: el score queda en cero, sin división por cero.
func TestGetDetail_TiendaSinVentas_ScoreCero(t *testing.T) {
	repo := &fakeRepo{products: []entity.Product{
		{ID: "p1", Name: "Nuevo", Category: "misc", Price: decimal.NewFromInt(10), Stock: 5},
	}}
	uc := NewCategoryUseCase(repo)

	detail, err := uc.GetDetail(context.Background(), "misc")
	require.NoError(t, err)
	assert.True(t, detail.PerformanceScore.IsZero())
}
