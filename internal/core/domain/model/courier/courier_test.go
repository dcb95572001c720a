package courier_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queuedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := menu.RestoreFoodItem(1, "Burger", kernel.MustMoney("5.99"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "alice")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item, 1))
	require.NoError(t, o.Checkout(time.Now()))
	return o
}

func onlineCourier(t *testing.T, username string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(username)
	require.NoError(t, err)
	c.GoOnline()
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("starts offline and unavailable", func(t *testing.T) {
		c, err := courier.NewCourier("dave")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "dave", c.Username())
		assert.False(t, c.IsOnline())
		assert.False(t, c.IsAvailable())
		assert.Nil(t, c.ActiveOrder())
	})

	t.Run("requires a username", func(t *testing.T) {
		c, err := courier.NewCourier("  ")

		require.ErrorIs(t, err, courier.ErrUsernameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, (&courier.Courier{}).Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores an assigned courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.RestoreCourier("dave", true, &id)

		require.NoError(t, err)
		assert.True(t, c.IsOnline())
		assert.False(t, c.IsAvailable())
		require.NotNil(t, c.ActiveOrder())
		assert.True(t, c.ActiveOrder().IsEqual(id))
	})

	t.Run("rejects an offline courier holding a delivery", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := courier.RestoreCourier("dave", false, &id)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCourier_Presence(t *testing.T) {
	t.Run("going online makes a free courier available", func(t *testing.T) {
		c := onlineCourier(t, "dave")

		assert.True(t, c.IsOnline())
		assert.True(t, c.IsAvailable())
	})

	t.Run("can go offline when free", func(t *testing.T) {
		c := onlineCourier(t, "dave")

		require.NoError(t, c.GoOffline())
		assert.False(t, c.IsAvailable())
	})

	t.Run("cannot go offline while delivering", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		require.NoError(t, c.TakeOrder(queuedOrder(t)))

		require.ErrorIs(t, c.GoOffline(), courier.ErrCourierIsBusy)
		assert.True(t, c.IsOnline())
	})
}

func TestCourier_TakeOrder(t *testing.T) {
	t.Run("holds exactly one delivery", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		first := queuedOrder(t)

		require.NoError(t, c.TakeOrder(first))

		assert.False(t, c.IsAvailable())
		assert.True(t, c.ActiveOrder().IsEqual(first.ID()))
		require.ErrorIs(t, c.TakeOrder(queuedOrder(t)), courier.ErrCourierIsBusy)
		assert.True(t, c.ActiveOrder().IsEqual(first.ID()))
	})

	t.Run("offline courier cannot take orders", func(t *testing.T) {
		c, _ := courier.NewCourier("dave")

		require.ErrorIs(t, c.TakeOrder(queuedOrder(t)), courier.ErrCourierIsOffline)
	})

	t.Run("only queued orders can be taken", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		cart, _ := order.NewOrder(kernel.NewUUID(), "alice")

		require.ErrorIs(t, c.TakeOrder(cart), errs.ErrValueIsInvalid)
		require.ErrorIs(t, c.TakeOrder(nil), order.ErrOrderIsNotConstructed)
	})

	t.Run("active order is a copy", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		o := queuedOrder(t)
		require.NoError(t, c.TakeOrder(o))

		*c.ActiveOrder() = kernel.NewUUID()

		assert.True(t, c.ActiveOrder().IsEqual(o.ID()))
	})
}

func TestCourier_CompleteDelivery(t *testing.T) {
	t.Run("releases the courier", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		o := queuedOrder(t)
		require.NoError(t, c.TakeOrder(o))

		require.NoError(t, c.CompleteDelivery(o.ID()))

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.ActiveOrder())
	})

	t.Run("rejects an order the courier does not hold", func(t *testing.T) {
		c := onlineCourier(t, "dave")
		require.ErrorIs(t, c.CompleteDelivery(kernel.NewUUID()), courier.ErrNoActiveDelivery)

		require.NoError(t, c.TakeOrder(queuedOrder(t)))
		require.ErrorIs(t, c.CompleteDelivery(kernel.NewUUID()), courier.ErrNoActiveDelivery)
	})
}
