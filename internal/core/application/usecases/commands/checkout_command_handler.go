package commands

import (
	"context"
	"time"

	"foodorder/internal/core/application/state"

	"go.uber.org/zap"
)

type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewCheckoutCommandHandler(uowFactory OrderUoWFactory, st *state.State, logger *zap.Logger) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "CheckoutCommandHandler")),
	}
}

// Handle freezes the cart, stores it with its line items and appends it to
// the order queue. An empty cart fails with order.ErrOrderIsEmpty.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o := command.Cart()
	if err := o.Checkout(time.Now().UTC()); err != nil {
		return err
	}

	// The row must exist before dispatch can see the order.
	persist(ctx, h.logger, "checkout", h.uowFactory.Create(), func(uow OrderUoW) error {
		return uow.OrderRepository().Add(ctx, o)
	})

	if err := h.state.Queue.Enqueue(o); err != nil {
		return err
	}

	h.logger.Info("order queued",
		zap.Stringer("order_id", o.ID()),
		zap.String("customer", o.Customer()),
		zap.Stringer("total", o.Total()),
		zap.Int("queue_length", h.state.Queue.Len()),
	)
	return nil
}
