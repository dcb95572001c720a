package commands

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"

	"go.uber.org/zap"
)

type SetCourierStatusCommandHandler struct {
	uowFactory AccountUoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewSetCourierStatusCommandHandler(
	uowFactory AccountUoWFactory,
	st *state.State,
	logger *zap.Logger,
) SetCourierStatusCommandHandler {
	return SetCourierStatusCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "SetCourierStatusCommandHandler")),
	}
}

// Handle toggles a delivery person online or offline and mirrors the result
// into the account flags. Going offline with an active delivery fails with
// courier.ErrCourierIsBusy.
func (h SetCourierStatusCommandHandler) Handle(
	ctx context.Context,
	command SetCourierStatusCommand,
) (*courier.Courier, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *courier.Courier
		acc     *account.Account
	)
	err := h.state.WithAssignment(func() error {
		var err error
		updated, err = h.state.Roster.Mutate(command.Username(), func(c *courier.Courier) error {
			if command.Online() {
				c.GoOnline()
				return nil
			}
			return c.GoOffline()
		})
		if err != nil {
			return err
		}

		acc, err = h.state.Accounts.UpdatePresence(updated.Username(), updated.IsOnline(), updated.IsAvailable())
		return err
	})
	if err != nil {
		return nil, err
	}

	persist(ctx, h.logger, "set courier status", h.uowFactory.Create(), func(uow AccountUoW) error {
		return uow.AccountRepository().Update(ctx, acc)
	})

	h.logger.Info("courier status changed",
		zap.String("username", updated.Username()),
		zap.Bool("online", updated.IsOnline()),
		zap.Bool("available", updated.IsAvailable()),
	)
	return updated, nil
}
