package commands_test

import (
	"sync"
	"testing"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(id, "dave")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "dave", cmd.Courier())

	_, err = commands.NewAcceptOrderCommand(kernel.UUID{}, "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAcceptOrderCommandHandler_Handle(t *testing.T) {
	t.Run("moves the order from the queue to the courier", func(t *testing.T) {
		st := state.New()
		addCourier(t, st, "dave", true)
		o := enqueue(t, st, "alice")

		uow := new(MockUoW)
		orders, accounts := expectAssignmentStored(t, uow, "dave")
		handler := commands.NewAcceptOrderCommandHandler(factory{uow}.all(), st, zap.NewNop())
		cmd, _ := commands.NewAcceptOrderCommand(o.ID(), "dave")

		result, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, st.Queue.Len())
		assert.Equal(t, order.Assigned, result.Order.Status())
		assert.True(t, result.Courier.ActiveOrder().IsEqual(o.ID()))
		acc, _ := st.Accounts.Get("dave")
		assert.False(t, acc.IsAvailable())
		orders.AssertExpectations(t)
		accounts.AssertExpectations(t)
	})

	t.Run("offline courier leaves the queue untouched", func(t *testing.T) {
		st := state.New()
		addCourier(t, st, "dave", false)
		enqueue(t, st, "alice")
		o := enqueue(t, st, "bob")
		enqueue(t, st, "carol")

		uow := new(MockUoW)
		handler := commands.NewAcceptOrderCommandHandler(factory{uow}.all(), st, zap.NewNop())
		cmd, _ := commands.NewAcceptOrderCommand(o.ID(), "dave")

		_, err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, courier.ErrCourierIsOffline)
		assert.Equal(t, []string{"alice", "bob", "carol"}, queuedCustomers(st))
		assert.Equal(t, order.Queued, o.Status())
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("busy courier cannot take a second order", func(t *testing.T) {
		st := state.New()
		addCourier(t, st, "dave", true)
		first := enqueue(t, st, "alice")
		second := enqueue(t, st, "bob")

		uow := new(MockUoW)
		expectAssignmentStored(t, uow, "dave")
		handler := commands.NewAcceptOrderCommandHandler(factory{uow}.all(), st, zap.NewNop())
		cmd, _ := commands.NewAcceptOrderCommand(first.ID(), "dave")
		_, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)

		cmd, _ = commands.NewAcceptOrderCommand(second.ID(), "dave")
		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, courier.ErrCourierIsBusy)
		assert.Equal(t, []string{"bob"}, queuedCustomers(st))
	})

	t.Run("an order taken by someone else is no longer pending", func(t *testing.T) {
		st := state.New()
		addCourier(t, st, "dave", true)
		handler := commands.NewAcceptOrderCommandHandler(factory{new(MockUoW)}.all(), st, zap.NewNop())
		cmd, _ := commands.NewAcceptOrderCommand(kernel.NewUUID(), "dave")

		_, err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrOrderIsNotPending)
	})

	t.Run("concurrent accepts hand the order out once", func(t *testing.T) {
		st := state.New()
		names := []string{"c1", "c2", "c3", "c4", "c5"}
		for _, name := range names {
			addCourier(t, st, name, true)
		}
		o := enqueue(t, st, "alice")

		uow := new(MockUoW)
		orders := new(MockOrderRepository)
		accounts := new(MockAccountRepository)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orders)
		uow.On("AccountRepository").Return(accounts)
		orders.On("Update", mock.Anything, mock.Anything).Return(nil)
		accounts.On("Update", mock.Anything, mock.Anything).Return(nil)

		handler := commands.NewAcceptOrderCommandHandler(factory{uow}.all(), st, zap.NewNop())

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins []string
		)
		for _, name := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, _ := commands.NewAcceptOrderCommand(o.ID(), name)
				if _, err := handler.Handle(t.Context(), cmd); err == nil {
					mu.Lock()
					wins = append(wins, name)
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Len(t, wins, 1)
		busy := 0
		for _, c := range st.Roster.List() {
			if c.HasActiveOrder() {
				busy++
			}
		}
		assert.Equal(t, 1, busy)
	})
}
