package account_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAccount(t *testing.T, username, password string, role account.Role, at time.Time) *account.Account {
	t.Helper()
	a, err := account.NewAccount(username, password, role, at)
	require.NoError(t, err)
	return a
}

func TestRegistry_Register(t *testing.T) {
	t.Run("duplicate signup fails and keeps the original credentials", func(t *testing.T) {
		r := account.NewRegistry()
		require.NoError(t, r.Register(mustAccount(t, "alice", "pw1", account.Customer, signupTime)))

		err := r.Register(mustAccount(t, "alice", "pw2", account.Merchant, signupTime))

		require.ErrorIs(t, err, account.ErrUsernameTaken)
		got, err := r.Authenticate("alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, account.Customer, got.Role())
	})

	t.Run("rejects unconstructed accounts", func(t *testing.T) {
		r := account.NewRegistry()

		require.ErrorIs(t, r.Register(&account.Account{}), account.ErrAccountIsNotConstructed)
	})
}

func TestRegistry_Authenticate(t *testing.T) {
	r := account.NewRegistry()
	require.NoError(t, r.Register(mustAccount(t, "alice", "pw1", account.Customer, signupTime)))

	_, unknownErr := r.Authenticate("nobody", "pw1")
	_, wrongErr := r.Authenticate("alice", "nope")

	require.ErrorIs(t, unknownErr, account.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, account.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegistry_ListAndDelete(t *testing.T) {
	r := account.NewRegistry()
	require.NoError(t, r.Register(mustAccount(t, "carol", "x", account.Merchant, signupTime)))
	require.NoError(t, r.Register(mustAccount(t, "alice", "x", account.Customer, signupTime)))
	require.NoError(t, r.Register(mustAccount(t, "dave", "x", account.Delivery, signupTime)))

	t.Run("lists in registration order", func(t *testing.T) {
		names := usernames(r.List())

		assert.Equal(t, []string{"carol", "alice", "dave"}, names)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.True(t, r.Delete("alice"))
		assert.False(t, r.Delete("alice"))
		assert.Equal(t, []string{"carol", "dave"}, usernames(r.List()))

		_, err := r.Get("alice")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("returned accounts are copies", func(t *testing.T) {
		listed := r.List()
		require.NoError(t, listed[1].SetPresence(true, true))

		stored, err := r.Get("dave")
		require.NoError(t, err)
		assert.False(t, stored.IsOnline())
	})
}

func TestRegistry_UpdatePresence(t *testing.T) {
	r := account.NewRegistry()
	require.NoError(t, r.Register(mustAccount(t, "dave", "x", account.Delivery, signupTime)))

	updated, err := r.UpdatePresence("dave", true, true)

	require.NoError(t, err)
	assert.True(t, updated.IsOnline())
	stored, _ := r.Get("dave")
	assert.True(t, stored.IsAvailable())

	_, err = r.UpdatePresence("ghost", true, true)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRegistry_Load(t *testing.T) {
	r := account.NewRegistry()
	later := mustAccount(t, "later", "x", account.Customer, signupTime.Add(time.Hour))
	earlier := mustAccount(t, "earlier", "x", account.Customer, signupTime)

	require.NoError(t, r.Load([]*account.Account{later, earlier}))

	assert.Equal(t, []string{"earlier", "later"}, usernames(r.List()))
}

func usernames(accounts []*account.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Username())
	}
	return out
}
