package queries

import (
	"context"

	"foodorder/internal/core/application/state"
)

type GetCouriersQueryHandler struct {
	state *state.State
}

func NewGetCouriersQueryHandler(st *state.State) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{state: st}
}

func (h GetCouriersQueryHandler) Handle(_ context.Context, query GetCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := h.state.Roster.List()
	resp := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		if query.OnlyAvailable() && !c.IsAvailable() {
			continue
		}

		r := CourierResponse{
			Username:  c.Username(),
			Online:    c.IsOnline(),
			Available: c.IsAvailable(),
		}
		if id := c.ActiveOrder(); id != nil {
			s := id.String()
			r.ActiveOrder = &s
		}
		resp = append(resp, r)
	}
	return resp, nil
}
