package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrDeleteAccountCommandIsNotConstructed = errors.New(
		"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
	)
	ErrCannotDeleteSelf = errors.New("administrators cannot delete their own account")
)

type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	actor    string
	username string

	guard guard.ConstructorGuard
}

// NewDeleteAccountCommand builds a request by actor to delete username.
func NewDeleteAccountCommand(actor, username string) (DeleteAccountCommand, error) {
	cmd := DeleteAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setUsername(username),
	); err != nil {
		return DeleteAccountCommand{}, err
	}
	if cmd.actor == cmd.username {
		return DeleteAccountCommand{}, ErrCannotDeleteSelf
	}

	return cmd, nil
}

func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

func (c DeleteAccountCommand) Actor() string {
	return c.actor
}

func (c DeleteAccountCommand) Username() string {
	return c.username
}

func (c *DeleteAccountCommand) setActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}

func (c *DeleteAccountCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}
