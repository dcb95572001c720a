package commands

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/services"

	"go.uber.org/zap"
)

type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	state      *state.State
	dispatcher services.OrderDispatcher
	logger     *zap.Logger
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, st *state.State, logger *zap.Logger) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		dispatcher: services.NewOrderDispatcher(),
		logger:     logger.With(zap.String("component", "AssignOrderCommandHandler")),
	}
}

// Handle binds a queued order to the first available courier in the roster.
// When nobody is free it returns services.ErrNoCapacity and the order keeps
// its place in the queue.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) (Assignment, error) {
	if err := command.Validate(); err != nil {
		return Assignment{}, err
	}

	var result Assignment
	err := h.state.WithAssignment(func() error {
		queued, idx, err := takeFromQueue(h.state.Queue, command.OrderID())
		if err != nil {
			return err
		}
		o := queued.Clone()

		var chosen string
		err = h.state.Roster.Modify(func(candidates []*courier.Courier) error {
			c, dispatchErr := h.dispatcher.Dispatch(o, candidates)
			if dispatchErr != nil {
				return dispatchErr
			}
			chosen = c.Username()
			return nil
		})
		if err != nil {
			h.state.Queue.InsertAt(idx, queued)
			return err
		}

		c, err := h.state.Roster.Get(chosen)
		if err != nil {
			return err
		}
		result = Assignment{Order: o, Courier: c}
		return nil
	})
	if err != nil {
		return Assignment{}, err
	}

	acc := syncPresence(h.state, h.logger, result.Courier)
	persist(ctx, h.logger, "assign order", h.uowFactory.Create(), func(uow UoW) error {
		return storeAssignment(ctx, uow, result.Order, acc)
	})

	h.logger.Info("order dispatched",
		zap.Stringer("order_id", result.Order.ID()),
		zap.String("courier", result.Courier.Username()),
	)
	return result, nil
}
