package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/pkg/errs"

	"go.uber.org/zap"
)

type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewDeleteAccountCommandHandler(
	uowFactory AccountUoWFactory,
	st *state.State,
	logger *zap.Logger,
) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "DeleteAccountCommandHandler")),
	}
}

// Handle removes the account and reports whether it existed. Deleting an
// unknown username is a no-op. A delivery person who is carrying an order
// cannot be deleted until the delivery is completed.
func (h DeleteAccountCommandHandler) Handle(ctx context.Context, command DeleteAccountCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	username := command.Username()

	var deleted bool
	err := h.state.WithAssignment(func() error {
		c, err := h.state.Roster.Get(username)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		case c.HasActiveOrder():
			return courier.ErrCourierIsBusy
		}

		h.state.Roster.Remove(username)
		deleted = h.state.Accounts.Delete(username)
		return nil
	})
	if err != nil {
		return false, err
	}

	if !deleted {
		return false, nil
	}

	persist(ctx, h.logger, "delete account", h.uowFactory.Create(), func(uow AccountUoW) error {
		return uow.AccountRepository().Delete(ctx, username)
	})

	h.logger.Info("account deleted",
		zap.String("username", username),
		zap.String("actor", command.Actor()),
	)
	return true, nil
}
