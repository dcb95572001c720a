package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSetCourierStatusCommandIsNotConstructed = errors.New(
	"SetCourierStatusCommand must be created via NewSetCourierStatusCommand constructor",
)

type SetCourierStatusCommand struct { //nolint:recvcheck //using for validation
	username string
	online   bool

	guard guard.ConstructorGuard
}

func NewSetCourierStatusCommand(username string, online bool) (SetCourierStatusCommand, error) {
	if strings.TrimSpace(username) == "" {
		return SetCourierStatusCommand{}, errs.NewValueIsRequiredError("username")
	}

	return SetCourierStatusCommand{
		username: username,
		online:   online,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierStatusCommandIsNotConstructed)
}

func (c SetCourierStatusCommand) Username() string {
	return c.username
}

func (c SetCourierStatusCommand) Online() bool {
	return c.online
}
