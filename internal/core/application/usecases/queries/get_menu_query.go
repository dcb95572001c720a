package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the menu in display order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse describes one dish. Position is the 1-based number
// shown to customers; Price keeps two decimals.
type MenuItemResponse struct {
	Position int    `json:"position"`
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}
