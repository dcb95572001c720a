package queries

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a username/password pair against the account store.
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(username, password string) (AuthenticateQuery, error) {
	if username == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateQuery) Username() string {
	return q.username
}

func (q AuthenticateQuery) Password() string {
	return q.password
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}
