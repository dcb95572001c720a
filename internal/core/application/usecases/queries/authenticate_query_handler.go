package queries

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
)

// AuthenticateQueryHandler answers login attempts. Unknown usernames and
// wrong passwords both yield account.ErrInvalidCredentials.
type AuthenticateQueryHandler struct {
	state *state.State
}

func NewAuthenticateQueryHandler(st *state.State) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{state: st}
}

func (h AuthenticateQueryHandler) Handle(_ context.Context, query AuthenticateQuery) (*account.Account, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.state.Accounts.Authenticate(query.Username(), query.Password())
}
