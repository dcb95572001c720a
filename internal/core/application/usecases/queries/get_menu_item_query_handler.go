package queries

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/menu"
)

type GetMenuItemQueryHandler struct {
	state *state.State
}

func NewGetMenuItemQueryHandler(st *state.State) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{state: st}
}

// Handle fails with errs.ErrValueIsOutOfRange when the position is past the
// end of the menu.
func (h GetMenuItemQueryHandler) Handle(_ context.Context, query GetMenuItemQuery) (menu.FoodItem, error) {
	if err := query.Validate(); err != nil {
		return menu.FoodItem{}, err
	}
	return h.state.Menu.ItemAt(query.Position())
}
