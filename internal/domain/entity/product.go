package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Views, AddToCartCount y TotalSold son contadores globales que mantienen los
// módulos de storefront y de órdenes; el motor de analítica solo los lee.
type Product struct {
	ID             string
	Name           string
	Category       string
	Price          decimal.Decimal // precio de venta actual
	Stock          int             // unidades disponibles (≥0)
	Views          int             // vistas acumuladas del producto
	AddToCartCount int             // veces agregado al carrito
	TotalSold      int             // unidades vendidas históricas
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LifetimeRevenue devuelve el ingreso histórico estimado del producto
// (precio actual × unidades vendidas).
func (p Product) LifetimeRevenue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.TotalSold)))
}

// InventoryValue devuelve el valor del stock disponible a precio de venta.
func (p Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
