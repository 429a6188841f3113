package models

import "errors"

// MenuCategory groups menu items in display order.
type MenuCategory struct {
	ID       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string     `gorm:"unique;not null" json:"name"`
	Position int        `json:"position"`
	Items    []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// MenuItem is a dish. Size-variant items (the made-to-order pizzas) carry
// per-size prices and a zero base price; everything else carries only Price.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint   `gorm:"index" json:"category_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	PriceSmall  int    `json:"price_small,omitempty"`
	PriceMedium int    `json:"price_medium,omitempty"`
	PriceLarge  int    `json:"price_large,omitempty"`
	IsVeg       bool   `json:"is_veg"`
	IsSpicy     bool   `json:"is_spicy"`
	Image       string `json:"image"`
}

var ErrBadSize = errors.New("size must be small, medium or large")

// HasSizes reports whether this item is priced per size.
func (m MenuItem) HasSizes() bool {
	return m.PriceSmall > 0
}

// PriceFor resolves the unit price for a size choice. Fixed-price items
// ignore the size; size-variant items require one of small/medium/large.
func (m MenuItem) PriceFor(size string) (int, error) {
	if !m.HasSizes() {
		return m.Price, nil
	}
	switch size {
	case "small":
		return m.PriceSmall, nil
	case "medium":
		return m.PriceMedium, nil
	case "large":
		return m.PriceLarge, nil
	default:
		return 0, ErrBadSize
	}
}

// CartItemID builds the cart line id. Sized items encode the size so each
// variant gets its own line.
func (m MenuItem) CartItemID(size string) string {
	if m.HasSizes() {
		return m.Name + "-" + size
	}
	return m.Name
}
