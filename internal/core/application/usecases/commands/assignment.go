package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"go.uber.org/zap"
)

var (
	ErrNoPendingOrders   = errors.New("no pending orders")
	ErrOrderIsNotPending = errors.New("order is no longer pending")
)

// Assignment is the outcome of binding an order to a courier.
type Assignment struct {
	Order   *order.Order
	Courier *courier.Courier
}

// takeFromQueue removes the order from the queue. A nil id takes the oldest.
func takeFromQueue(q *order.Queue, id *kernel.UUID) (*order.Order, int, error) {
	if id == nil {
		pending := q.List()
		if len(pending) == 0 {
			return nil, -1, ErrNoPendingOrders
		}
		first := pending[0].ID()
		id = &first
	}

	o, idx, err := q.Remove(*id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, -1, ErrOrderIsNotPending
	}
	return o, idx, err
}

// syncPresence copies the courier's flags into its account.
func syncPresence(st *state.State, logger *zap.Logger, c *courier.Courier) *account.Account {
	acc, err := st.Accounts.UpdatePresence(c.Username(), c.IsOnline(), c.IsAvailable())
	if err != nil {
		logger.Warn("courier has no matching account",
			zap.String("username", c.Username()),
			zap.Error(err),
		)
		return nil
	}
	return acc
}

// storeAssignment writes the bound order and the courier's account.
func storeAssignment(ctx context.Context, uow UoW, o *order.Order, acc *account.Account) error {
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if acc == nil {
		return nil
	}
	return uow.AccountRepository().Update(ctx, acc)
}
