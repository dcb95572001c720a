package menu

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const maxNameLength = 100

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem or RestoreFoodItem")
)

// FoodItem is a purchasable dish. ID is 0 until the store assigns one on insert.
// A FoodItem is an immutable value.
type FoodItem struct {
	id    uint
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewFoodItem creates an item that has not been stored yet.
func NewFoodItem(name string, price kernel.Money) (FoodItem, error) {
	return RestoreFoodItem(0, name, price)
}

// RestoreFoodItem creates an item carrying the identifier assigned by the store.
func RestoreFoodItem(id uint, name string, price kernel.Money) (FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FoodItem{}, ErrNameIsRequired
	}
	if len(name) > maxNameLength {
		return FoodItem{}, errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	if price.Decimal().IsNegative() {
		return FoodItem{}, errs.NewValueIsInvalidError("price")
	}

	return FoodItem{
		id:    id,
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (f FoodItem) Validate() error {
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

func (f FoodItem) ID() uint {
	return f.id
}

func (f FoodItem) Name() string {
	return f.name
}

func (f FoodItem) Price() kernel.Money {
	return f.price
}

// IsStored reports whether the store has assigned an identifier.
func (f FoodItem) IsStored() bool {
	return f.id != 0
}

// IsSame identifies items by store ID, or by name and price while unstored.
func (f FoodItem) IsSame(other FoodItem) bool {
	if f.id != 0 || other.id != 0 {
		return f.id == other.id
	}
	return f.name == other.name && f.price.Equal(other.price)
}
