package commands

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	st *state.State,
	logger *zap.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "CompleteDeliveryCommandHandler")),
	}
}

// Handle releases the courier from its active delivery and marks the stored
// order Delivered. Returns the id of the delivered order, or
// courier.ErrNoActiveDelivery when the courier holds none.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var (
		orderID kernel.UUID
		updated *courier.Courier
	)
	err := h.state.WithAssignment(func() error {
		var err error
		updated, err = h.state.Roster.Mutate(command.Courier(), func(c *courier.Courier) error {
			active := c.ActiveOrder()
			if active == nil {
				return courier.ErrNoActiveDelivery
			}
			orderID = *active
			return c.CompleteDelivery(orderID)
		})
		return err
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	acc := syncPresence(h.state, h.logger, updated)
	persist(ctx, h.logger, "complete delivery", h.uowFactory.Create(), func(uow UoW) error {
		orders := uow.OrderRepository()
		o, err := orders.Get(ctx, orderID)
		if err != nil {
			return err
		}
		if err = o.Deliver(); err != nil {
			return err
		}
		if err = orders.Update(ctx, o); err != nil {
			return err
		}
		if acc == nil {
			return nil
		}
		return uow.AccountRepository().Update(ctx, acc)
	})

	h.logger.Info("delivery completed",
		zap.Stringer("order_id", orderID),
		zap.String("courier", updated.Username()),
	)
	return orderID, nil
}
