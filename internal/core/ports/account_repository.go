package ports

import (
	"context"

	"foodorder/internal/core/domain/model/account"
)

// AccountRepository persists accounts in the users table.
type AccountRepository interface {
	// Add inserts a new account. Implementations reject duplicate usernames.
	Add(ctx context.Context, a *account.Account) error

	// Update overwrites the stored presence flags of an existing account.
	Update(ctx context.Context, a *account.Account) error

	// Delete removes the account. Deleting an unknown username is not an error.
	Delete(ctx context.Context, username string) error

	Get(ctx context.Context, username string) (*account.Account, error)

	// GetAll returns every account in registration order.
	GetAll(ctx context.Context) ([]*account.Account, error)
}
