package ports

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
)

type FoodItemRepository interface {
	// Add stores an unstored item and returns it with the assigned id.
	Add(ctx context.Context, item menu.FoodItem) (menu.FoodItem, error)

	// GetAll returns items in insertion order.
	GetAll(ctx context.Context) ([]menu.FoodItem, error)
}
