package order

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// Line is one food item and how many of it were ordered.
type Line struct {
	item     menu.FoodItem
	quantity int
}

func (l Line) Item() menu.FoodItem {
	return l.item
}

func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal is the item price times the quantity.
func (l Line) Subtotal() kernel.Money {
	return l.item.Price().Times(l.quantity)
}
