package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery lists delivery people in registration order, the order in
// which dispatch considers them.
type GetCouriersQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewGetCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAvailableCouriersQuery restricts the list to couriers that could take
// an order right now.
func NewGetAvailableCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{onlyAvailable: true, guard: guard.NewConstructorGuard()}
}

func (q GetCouriersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

type CourierResponse struct {
	Username    string  `json:"username"`
	Online      bool    `json:"online"`
	Available   bool    `json:"available"`
	ActiveOrder *string `json:"active_order,omitempty"`
}
