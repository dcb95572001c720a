package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var ErrGetAccountsQueryIsNotConstructed = errors.New(
	"GetAccountsQuery must be created via NewGetAccountsQuery constructor",
)

// GetAccountsQuery lists every account for the administrator.
type GetAccountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAccountsQuery() GetAccountsQuery {
	return GetAccountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountsQueryIsNotConstructed)
}

// AccountResponse never carries the password digest.
type AccountResponse struct {
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	Online       bool      `json:"online"`
	Available    bool      `json:"available"`
	RegisteredAt time.Time `json:"registered_at"`
}
