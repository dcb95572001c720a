package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand or NewAssignNextOrderCommand",
)

// AssignOrderCommand asks the dispatcher to pick a courier for a queued order.
type AssignOrderCommand struct {
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(orderID kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAssignNextOrderCommand targets the oldest queued order.
func NewAssignNextOrderCommand() AssignOrderCommand {
	return AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID is nil for the next-in-queue form.
func (c AssignOrderCommand) OrderID() *kernel.UUID {
	if c.orderID == nil {
		return nil
	}
	id := *c.orderID
	return &id
}
