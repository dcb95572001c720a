package commands

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/services"

	"go.uber.org/zap"
)

type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	state      *state.State
	dispatcher services.OrderDispatcher
	logger     *zap.Logger
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory, st *state.State, logger *zap.Logger) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		dispatcher: services.NewOrderDispatcher(),
		logger:     logger.With(zap.String("component", "AcceptOrderCommandHandler")),
	}
}

// Handle moves the order out of the queue and onto the courier. It fails
// with ErrOrderIsNotPending when someone else took the order first, and
// with courier.ErrCourierIsOffline or courier.ErrCourierIsBusy when the
// courier cannot take it; in both cases the queue is unchanged.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (Assignment, error) {
	if err := command.Validate(); err != nil {
		return Assignment{}, err
	}

	var result Assignment
	err := h.state.WithAssignment(func() error {
		id := command.OrderID()
		queued, idx, err := takeFromQueue(h.state.Queue, &id)
		if err != nil {
			return err
		}
		o := queued.Clone()

		c, err := h.state.Roster.Mutate(command.Courier(), func(c *courier.Courier) error {
			return h.dispatcher.Accept(o, c)
		})
		if err != nil {
			h.state.Queue.InsertAt(idx, queued)
			return err
		}

		result = Assignment{Order: o, Courier: c}
		return nil
	})
	if err != nil {
		return Assignment{}, err
	}

	acc := syncPresence(h.state, h.logger, result.Courier)
	persist(ctx, h.logger, "accept order", h.uowFactory.Create(), func(uow UoW) error {
		return storeAssignment(ctx, uow, result.Order, acc)
	})

	h.logger.Info("order accepted",
		zap.Stringer("order_id", result.Order.ID()),
		zap.String("courier", result.Courier.Username()),
	)
	return result, nil
}
