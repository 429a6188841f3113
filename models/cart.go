package models

import "strings"

// Fee rules, in rupees.
const (
	FreeDeliveryThreshold = 300 // subtotal at which delivery becomes free
	DeliveryFee           = 30  // flat fee below the threshold
	PizzaBoxFee           = 10  // per-unit packaging surcharge for pizzas
)

// CartItem is one cart line. Size-variant dishes encode the size into the id
// so a medium and a large of the same pizza stay separate lines.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	IsVeg    bool   `json:"isVeg"`
	Category string `json:"category,omitempty"`
}

// NeedsBox reports whether the packaging surcharge applies to this line.
func (i CartItem) NeedsBox() bool {
	return strings.Contains(strings.ToLower(i.Name), "pizza") ||
		strings.Contains(strings.ToLower(i.Category), "pizza")
}

// CartTotals are the derived fields recomputed on every cart change.
type CartTotals struct {
	TotalItems   int  `json:"totalItems"`
	TotalPrice   int  `json:"totalPrice"`
	DeliveryFee  int  `json:"deliveryFee"`
	BoxFees      int  `json:"boxFees"`
	FinalTotal   int  `json:"finalTotal"`
	FreeDelivery bool `json:"isFreeDelivery"`
}

// ComputeTotals derives the cart summary from its line items.
func ComputeTotals(items []CartItem) CartTotals {
	var t CartTotals
	for _, item := range items {
		t.TotalItems += item.Quantity
		t.TotalPrice += item.Price * item.Quantity
		if item.NeedsBox() {
			t.BoxFees += PizzaBoxFee * item.Quantity
		}
	}
	if t.TotalPrice >= FreeDeliveryThreshold {
		t.FreeDelivery = true
	} else {
		t.DeliveryFee = DeliveryFee
	}
	t.FinalTotal = t.TotalPrice + t.DeliveryFee + t.BoxFees
	return t
}
