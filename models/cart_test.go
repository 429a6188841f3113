package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timeFixed() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestComputeTotalsSums(t *testing.T) {
	items := []CartItem{
		{ID: "Veg Noodles", Name: "Veg Noodles", Price: 109, Quantity: 2},
		{ID: "Chana Puri", Name: "Chana Puri", Price: 79, Quantity: 1},
	}

	totals := ComputeTotals(items)
	assert.Equal(t, 3, totals.TotalItems)
	assert.Equal(t, 297, totals.TotalPrice)
	assert.Equal(t, 0, totals.BoxFees)
	assert.Equal(t, DeliveryFee, totals.DeliveryFee)
	assert.False(t, totals.FreeDelivery)
	assert.Equal(t, 327, totals.FinalTotal)
}

func TestBoxFeeByNameAndCategory(t *testing.T) {
	items := []CartItem{
		{ID: "Onion Pizza", Name: "Onion Pizza", Price: 69, Quantity: 2},
		{ID: "Garlic Bread", Name: "Garlic Bread", Price: 99, Quantity: 1, Category: "Veg PIZZA"},
		{ID: "Veg Noodles", Name: "Veg Noodles", Price: 109, Quantity: 1, Category: "Noodles"},
	}

	totals := ComputeTotals(items)
	// 2 pizzas by name + 1 by category, 10 each.
	assert.Equal(t, 30, totals.BoxFees)
}

func TestPizzaOrderScenario(t *testing.T) {
	items := []CartItem{
		{ID: "pizza-1", Name: "Margherita Pizza", Price: 100, Quantity: 1, Category: "pizza"},
	}

	totals := ComputeTotals(items)
	assert.Equal(t, 100, totals.TotalPrice)
	assert.Equal(t, 30, totals.DeliveryFee)
	assert.Equal(t, 10, totals.BoxFees)
	assert.Equal(t, 140, totals.FinalTotal)
	assert.False(t, totals.FreeDelivery)
}

func TestFreeDeliveryBoundary(t *testing.T) {
	at := ComputeTotals([]CartItem{{ID: "x", Name: "Thali", Price: 300, Quantity: 1}})
	assert.True(t, at.FreeDelivery)
	assert.Equal(t, 0, at.DeliveryFee)
	assert.Equal(t, 300, at.FinalTotal)

	below := ComputeTotals([]CartItem{{ID: "x", Name: "Thali", Price: 299, Quantity: 1}})
	assert.False(t, below.FreeDelivery)
	assert.Equal(t, DeliveryFee, below.DeliveryFee)
}

func TestEmptyCartTotals(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, 0, totals.TotalItems)
	assert.Equal(t, 0, totals.TotalPrice)
	assert.Equal(t, DeliveryFee, totals.DeliveryFee)
}

func TestMenuItemPriceFor(t *testing.T) {
	fixed := MenuItem{Name: "Onion Pizza", Price: 69}
	p, err := fixed.PriceFor("")
	assert.NoError(t, err)
	assert.Equal(t, 69, p)
	assert.Equal(t, "Onion Pizza", fixed.CartItemID(""))

	sized := MenuItem{Name: "Margherita Pizza", PriceSmall: 99, PriceMedium: 155, PriceLarge: 259}
	p, err = sized.PriceFor("medium")
	assert.NoError(t, err)
	assert.Equal(t, 155, p)
	assert.Equal(t, "Margherita Pizza-medium", sized.CartItemID("medium"))

	_, err = sized.PriceFor("")
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestMapPaymentMethod(t *testing.T) {
	m, err := MapPaymentMethod("COD")
	assert.NoError(t, err)
	assert.Equal(t, PaymentCOD, m)

	_, err = MapPaymentMethod("bitcoin")
	assert.Error(t, err)
}

func TestNewOrderIDShape(t *testing.T) {
	id := NewOrderID(timeFixed())
	assert.Len(t, id, 11)
	assert.Equal(t, "ORD", id[:3])
}
