package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetOrderLogQueryIsNotConstructed = errors.New(
	"GetOrderLogQuery must be created via NewGetOrderLogQuery constructor",
)

// GetOrderLogQuery reads every stored order with its lines, the merchant's
// "View Orders" screen. Open carts are never stored and so never listed.
type GetOrderLogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderLogQuery() GetOrderLogQuery {
	return GetOrderLogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderLogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLogQueryIsNotConstructed)
}
