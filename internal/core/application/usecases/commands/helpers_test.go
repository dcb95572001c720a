package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func burger(t *testing.T) menu.FoodItem {
	t.Helper()
	item, err := menu.RestoreFoodItem(1, "Burger", kernel.MustMoney("5.99"))
	require.NoError(t, err)
	return item
}

func cart(t *testing.T, customer string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(burger(t), 1))
	return o
}

// enqueue checks out a one-burger cart straight into the state queue.
func enqueue(t *testing.T, st *state.State, customer string) *order.Order {
	t.Helper()
	o := cart(t, customer)
	require.NoError(t, o.Checkout(time.Now()))
	require.NoError(t, st.Queue.Enqueue(o))
	return o
}

// addCourier registers a delivery account and its roster entry.
func addCourier(t *testing.T, st *state.State, username string, online bool) {
	t.Helper()
	acc, err := account.NewAccount(username, "pw", account.Delivery, time.Now())
	require.NoError(t, err)
	require.NoError(t, st.Accounts.Register(acc))

	c, err := courier.RestoreCourier(username, online, nil)
	require.NoError(t, err)
	require.NoError(t, st.Roster.Register(c))
}

func queuedCustomers(st *state.State) []string {
	var out []string
	for _, o := range st.Queue.List() {
		out = append(out, o.Customer())
	}
	return out
}
