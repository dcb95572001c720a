package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const maxUsernameLength = 64

var (
	ErrUsernameIsRequired      = errs.NewValueIsRequiredError("username")
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Account holds the credentials, role and delivery presence of one actor.
//
// Invariants:
//   - username is non-empty, has no surrounding whitespace and is unique in a Registry
//   - the password is only ever held as a bcrypt digest
//   - online and available are only meaningful for Delivery accounts
type Account struct {
	username     string
	password     PasswordHash
	role         Role
	online       bool
	available    bool
	registeredAt time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates an account at signup, hashing the plain text password.
//
// Example:
//
//	acc, err := account.NewAccount("alice", "pw1", account.Customer, time.Now())
//	if err != nil {
//	    // validation error: show it and re-prompt
//	}
func NewAccount(username, password string, role Role, registeredAt time.Time) (*Account, error) {
	a := &Account{
		registeredAt: registeredAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setUsername(username), a.setRole(role)); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	a.password = hash

	return a, nil
}

// RestoreAccount rebuilds an account loaded from storage.
func RestoreAccount(
	username string,
	password PasswordHash,
	role Role,
	online, available bool,
	registeredAt time.Time,
) (*Account, error) {
	a := &Account{
		password:     password,
		online:       online,
		available:    available,
		registeredAt: registeredAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setUsername(username), a.setRole(role)); err != nil {
		return nil, err
	}
	if password.String() == "" {
		return nil, ErrPasswordIsRequired
	}

	return a, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) Password() PasswordHash {
	return a.password
}

func (a *Account) IsOnline() bool {
	return a.online
}

func (a *Account) IsAvailable() bool {
	return a.available
}

func (a *Account) RegisteredAt() time.Time {
	return a.registeredAt
}

// CheckPassword reports whether plain matches the stored digest.
func (a *Account) CheckPassword(plain string) bool {
	return a.password.Matches(plain)
}

// SetPresence records the delivery status flags.
func (a *Account) SetPresence(online, available bool) error {
	if a.role != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%s accounts have no delivery presence", a.role),
		)
	}
	a.online = online
	a.available = available
	return nil
}

func (a *Account) clone() *Account {
	c := *a
	return &c
}

func (a *Account) setUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return ErrUsernameIsRequired
	}
	if trimmed != username {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("must not start or end with spaces"))
	}
	if len(username) > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", len(username), 1, maxUsernameLength)
	}
	a.username = username
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
