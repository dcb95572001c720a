package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrRestoreStateCommandIsNotConstructed = errors.New(
	"RestoreStateCommand must be created via NewRestoreStateCommand constructor",
)

// RestoreStateCommand loads the persisted accounts, menu and open orders into
// memory at startup and seeds the administrator account and the default menu
// when they are missing.
type RestoreStateCommand struct {
	adminUsername string
	adminPassword string

	guard guard.ConstructorGuard
}

func NewRestoreStateCommand(adminUsername, adminPassword string) (RestoreStateCommand, error) {
	if strings.TrimSpace(adminUsername) == "" {
		return RestoreStateCommand{}, errs.NewValueIsRequiredError("admin username")
	}
	if adminPassword == "" {
		return RestoreStateCommand{}, errs.NewValueIsRequiredError("admin password")
	}

	return RestoreStateCommand{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RestoreStateCommand) Validate() error {
	return c.guard.Validate(ErrRestoreStateCommandIsNotConstructed)
}

func (c RestoreStateCommand) AdminUsername() string {
	return c.adminUsername
}

func (c RestoreStateCommand) AdminPassword() string {
	return c.adminPassword
}
