package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estados posibles de una orden.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Canales de entrega de una orden.
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// OrderItem línea de una orden.
type OrderItem struct {
	ProductID string
	Quantity  int             // ≥1
	UnitPrice decimal.Decimal // precio unitario al momento de la compra
}

// Subtotal devuelve precio unitario × cantidad de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order representa una orden del storefront. OriginalAmount y DiscountAmount
// son opcionales: las órdenes sin promoción solo traen TotalAmount.
type Order struct {
	ID             string
	OrderNumber    string
	CreatedAt      time.Time
	Status         OrderStatus
	DeliveryType   string // delivery | pickup
	Address        string
	TotalAmount    decimal.Decimal     // monto cobrado
	OriginalAmount decimal.NullDecimal // monto antes de descuentos; inválido = igual a TotalAmount
	DiscountAmount decimal.NullDecimal // descuento aplicado; inválido = 0
	UserID         string              // vacío o "guest" = orden de invitado
	Phone          string
	Items          []OrderItem
}

// OriginalOrTotal devuelve OriginalAmount si la orden lo trae; si no, TotalAmount.
func (o Order) OriginalOrTotal() decimal.Decimal {
	if o.OriginalAmount.Valid {
		return o.OriginalAmount.Decimal
	}
	return o.TotalAmount
}

// DiscountOrZero devuelve DiscountAmount si la orden lo trae; si no, cero.
func (o Order) DiscountOrZero() decimal.Decimal {
	if o.DiscountAmount.Valid {
		return o.DiscountAmount.Decimal
	}
	return decimal.Zero
}

// CustomerKey identidad del cliente de una orden para conteos deduplicados.
// Es una unión etiquetada: o la orden pertenece a un usuario registrado
// (UserID) o es de un invitado identificado por su teléfono. Dos órdenes de
// invitados con el mismo teléfono cuentan como el mismo cliente; dos órdenes
// de invitados con teléfonos distintos siempre son clientes distintos.
type CustomerKey struct {
	Registered bool
	Value      string
}

// Key serializa la unión para usarla como llave de un set.
func (k CustomerKey) Key() string {
	if k.Registered {
		return "user:" + k.Value
	}
	return "guest:" + k.Value
}

// CustomerKey devuelve la identidad del cliente de la orden.
func (o Order) CustomerKey() CustomerKey {
	if o.UserID != "" && o.UserID != "guest" {
		return CustomerKey{Registered: true, Value: o.UserID}
	}
	return CustomerKey{Registered: false, Value: o.Phone}
}
