package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

type SignUpCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewSignUpCommand accepts customer, merchant and delivery roles only.
func NewSignUpCommand(username, password string, role account.Role) (SignUpCommand, error) {
	cmd := SignUpCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setRole(role); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) Username() string {
	return c.username
}

func (c SignUpCommand) Password() string {
	return c.password
}

func (c SignUpCommand) Role() account.Role {
	return c.role
}

func (c *SignUpCommand) setRole(role account.Role) error {
	if !role.IsSelfService() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s accounts cannot be created at signup", role))
	}
	c.role = role
	return nil
}
