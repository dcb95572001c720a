package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// assigned binds a fresh queued order to courierName directly in memory.
func assigned(t *testing.T, st *state.State, courierName string) *order.Order {
	t.Helper()
	o := enqueue(t, st, "alice")
	_, _, err := st.Queue.Remove(o.ID())
	require.NoError(t, err)
	_, err = st.Roster.Mutate(courierName, func(c *courier.Courier) error {
		return services.NewOrderDispatcher().Accept(o, c)
	})
	require.NoError(t, err)
	return o
}

func TestCompleteDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("frees the courier and marks the stored order delivered", func(t *testing.T) {
		ctx := t.Context()
		st := state.New()
		addCourier(t, st, "dave", true)
		o := assigned(t, st, "dave")

		orders := new(MockOrderRepository)
		accounts := new(MockAccountRepository)
		uow := new(MockUoW)
		expectTx(uow)
		uow.On("OrderRepository").Return(orders).Once()
		uow.On("AccountRepository").Return(accounts).Once()
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Delivered
		})).Return(nil).Once()
		accounts.On("Update", ctx, mock.MatchedBy(func(a *account.Account) bool {
			return a.Username() == "dave" && a.IsAvailable()
		})).Return(nil).Once()

		handler := commands.NewCompleteDeliveryCommandHandler(factory{uow}.all(), st, zap.NewNop())
		cmd, _ := commands.NewCompleteDeliveryCommand("dave")

		id, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(o.ID()))
		c, _ := st.Roster.Get("dave")
		assert.True(t, c.IsAvailable())
		orders.AssertExpectations(t)
		accounts.AssertExpectations(t)
	})

	t.Run("courier is freed even when the store is down", func(t *testing.T) {
		ctx := t.Context()
		st := state.New()
		addCourier(t, st, "dave", true)
		assigned(t, st, "dave")
		logger, logs := observedLogger()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

		handler := commands.NewCompleteDeliveryCommandHandler(factory{uow}.all(), st, logger)
		cmd, _ := commands.NewCompleteDeliveryCommand("dave")

		_, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		c, _ := st.Roster.Get("dave")
		assert.False(t, c.HasActiveOrder())
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("courier without a delivery", func(t *testing.T) {
		st := state.New()
		addCourier(t, st, "dave", true)
		handler := commands.NewCompleteDeliveryCommandHandler(factory{new(MockUoW)}.all(), st, zap.NewNop())
		cmd, _ := commands.NewCompleteDeliveryCommand("dave")

		_, err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, courier.ErrNoActiveDelivery)
	})
}
