package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/guard"
)

var ErrAddFoodItemCommandIsNotConstructed = errors.New(
	"AddFoodItemCommand must be created via NewAddFoodItemCommand constructor",
)

type AddFoodItemCommand struct {
	item menu.FoodItem

	guard guard.ConstructorGuard
}

// NewAddFoodItemCommand validates the item the merchant typed in.
func NewAddFoodItemCommand(name string, price kernel.Money) (AddFoodItemCommand, error) {
	item, err := menu.NewFoodItem(name, price)
	if err != nil {
		return AddFoodItemCommand{}, err
	}

	return AddFoodItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodItemCommandIsNotConstructed)
}

func (c AddFoodItemCommand) Item() menu.FoodItem {
	return c.item
}
