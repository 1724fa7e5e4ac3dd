package analytics

import (
	"sort"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// productSales acumulado de ventas de un producto dentro del período.
type productSales struct {
	quantity int
	revenue  decimal.Decimal
}

// BuildProductPerformance calcula las filas de rendimiento por producto.
//
// Sin filtro de fechas (filtered = false) usa los contadores históricos del
// producto: TotalSold y precio × TotalSold. Con filtro, re-deriva unidades e
// ingreso recorriendo solo las líneas de las órdenes del período (orders ya
// viene filtrado por el puerto de lectura).
//
// Las filas salen ordenadas de mayor a menor ingreso; los empates conservan
// el orden de entrada.
func BuildProductPerformance(products []entity.Product, orders []entity.Order, filtered bool) []dto.ProductPerformanceDTO {
	var sales map[string]productSales
	if filtered {
		sales = make(map[string]productSales, len(products))
		for _, o := range orders {
			for _, item := range o.Items {
				acc := sales[item.ProductID]
				acc.quantity += item.Quantity
				acc.revenue = acc.revenue.Add(item.Subtotal())
				sales[item.ProductID] = acc
			}
		}
	}

	rows := make([]dto.ProductPerformanceDTO, 0, len(products))
	for _, p := range products {
		sold := p.TotalSold
		revenue := p.LifetimeRevenue()
		if filtered {
			acc := sales[p.ID]
			sold = acc.quantity
			revenue = acc.revenue
		}
		rows = append(rows, dto.ProductPerformanceDTO{
			ProductID:        p.ID,
			Views:            p.Views,
			AddToCartCount:   p.AddToCartCount,
			TotalSold:        sold,
			ConversionRate:   conversionRate(sold, p.Views),
			RevenueGenerated: revenue.Round(2),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RevenueGenerated.GreaterThan(rows[j].RevenueGenerated)
	})
	return rows
}

// conversionRate devuelve vendidos / vistas * 100 redondeado a 2 decimales,
// o cero cuando no hay vistas.
func conversionRate(sold, views int) decimal.Decimal {
	if views <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(sold)).
		Div(decimal.NewFromInt(int64(views))).
		Mul(hundred).
		Round(2)
}
