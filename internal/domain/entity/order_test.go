package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func TestCustomerKey(t *testing.T) {
	registered := entity.Order{UserID: "u1", Phone: "3001234567"}
	assert.Equal(t, "user:u1", registered.CustomerKey().Key(),
		"usuario registrado se identifica por su ID aunque traiga teléfono")

	guest := entity.Order{UserID: "", Phone: "3001234567"}
	assert.Equal(t, "guest:3001234567", guest.CustomerKey().Key())

	// El valor literal "guest" en UserID también es una orden de invitado.
	legacy := entity.Order{UserID: "guest", Phone: "3009999999"}
	assert.Equal(t, "guest:3009999999", legacy.CustomerKey().Key())
}

func TestOriginalOrTotal(t *testing.T) {
	promo := entity.Order{
		TotalAmount:    decimal.NewFromInt(90),
		OriginalAmount: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		DiscountAmount: decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}
	assert.Equal(t, "100", promo.OriginalOrTotal().String())
	assert.Equal(t, "10", promo.DiscountOrZero().String())

	plain := entity.Order{TotalAmount: decimal.NewFromInt(90)}
	assert.Equal(t, "90", plain.OriginalOrTotal().String(),
		"sin monto original se usa el total cobrado")
	assert.True(t, plain.DiscountOrZero().IsZero())
}

func TestOrderItemSubtotal(t *testing.T) {
	item := entity.OrderItem{Quantity: 3, UnitPrice: decimal.RequireFromString("4.50")}
	assert.Equal(t, "13.5", item.Subtotal().String())
}
