package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

type CheckoutCommand struct {
	cart *order.Order

	guard guard.ConstructorGuard
}

// NewCheckoutCommand wraps the customer's open cart.
func NewCheckoutCommand(cart *order.Order) (CheckoutCommand, error) {
	if err := cart.Validate(); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		cart:  cart,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Cart() *order.Order {
	return c.cart
}
