package queries

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/order"
)

type GetPendingOrdersQueryHandler struct {
	state *state.State
}

func NewGetPendingOrdersQueryHandler(st *state.State) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{state: st}
}

// Handle returns the queue as it is right now. Positions are only valid for
// this snapshot; act on orders by ID.
func (h GetPendingOrdersQueryHandler) Handle(_ context.Context, query GetPendingOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := h.state.Queue.List()
	resp := make([]OrderResponse, 0, len(pending))
	for i, o := range pending {
		r := orderResponse(o)
		r.Position = i + 1
		resp = append(resp, r)
	}
	return resp, nil
}

func orderResponse(o *order.Order) OrderResponse {
	lines := o.Lines()
	r := OrderResponse{
		ID:       o.ID().String(),
		Customer: o.Customer(),
		Status:   o.Status().String(),
		Courier:  o.Courier(),
		PlacedAt: o.PlacedAt(),
		Total:    o.Total().String(),
		Lines:    make([]LineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		r.Lines = append(r.Lines, LineResponse{
			Item:      l.Item().Name(),
			UnitPrice: l.Item().Price().String(),
			Quantity:  l.Quantity(),
			Subtotal:  l.Subtotal().String(),
		})
	}
	return r
}
