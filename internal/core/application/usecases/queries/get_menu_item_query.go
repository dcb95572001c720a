package queries

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery resolves a 1-based menu position to the dish a customer
// puts in the cart.
type GetMenuItemQuery struct {
	position int

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(position int) (GetMenuItemQuery, error) {
	if position < 1 {
		return GetMenuItemQuery{}, errs.NewValueIsOutOfRangeError("menu position", position, 1, "menu length")
	}
	return GetMenuItemQuery{position: position, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Position() int {
	return q.position
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}
