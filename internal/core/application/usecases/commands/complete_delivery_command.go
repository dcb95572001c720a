package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

type CompleteDeliveryCommand struct {
	courier string

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(courier string) (CompleteDeliveryCommand, error) {
	if strings.TrimSpace(courier) == "" {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("courier")
	}

	return CompleteDeliveryCommand{
		courier: courier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) Courier() string {
	return c.courier
}
