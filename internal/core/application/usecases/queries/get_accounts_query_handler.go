package queries

import (
	"context"

	"foodorder/internal/core/application/state"
)

type GetAccountsQueryHandler struct {
	state *state.State
}

func NewGetAccountsQueryHandler(st *state.State) GetAccountsQueryHandler {
	return GetAccountsQueryHandler{state: st}
}

// Handle returns accounts in registration order.
func (h GetAccountsQueryHandler) Handle(_ context.Context, query GetAccountsQuery) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := h.state.Accounts.List()
	resp := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, AccountResponse{
			Username:     a.Username(),
			Role:         a.Role().String(),
			Online:       a.IsOnline(),
			Available:    a.IsAvailable(),
			RegisteredAt: a.RegisteredAt(),
		})
	}
	return resp, nil
}
