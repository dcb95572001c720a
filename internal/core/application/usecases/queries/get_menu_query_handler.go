package queries

import (
	"context"

	"foodorder/internal/core/application/state"
)

type GetMenuQueryHandler struct {
	state *state.State
}

func NewGetMenuQueryHandler(st *state.State) GetMenuQueryHandler {
	return GetMenuQueryHandler{state: st}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := h.state.Menu.List()
	resp := make([]MenuItemResponse, 0, len(items))
	for i, item := range items {
		resp = append(resp, MenuItemResponse{
			Position: i + 1,
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price().String(),
		})
	}
	return resp, nil
}
