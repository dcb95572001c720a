package commands

import (
	"context"
	"time"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"

	"go.uber.org/zap"
)

type SignUpCommandHandler struct {
	uowFactory AccountUoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewSignUpCommandHandler(uowFactory AccountUoWFactory, st *state.State, logger *zap.Logger) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "SignUpCommandHandler")),
	}
}

// Handle registers the account and, for delivery accounts, adds an offline
// courier to the roster. A duplicate username returns account.ErrUsernameTaken
// and leaves the existing account untouched.
func (h SignUpCommandHandler) Handle(ctx context.Context, command SignUpCommand) (*account.Account, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(command.Username(), command.Password(), command.Role(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.state.Accounts.Register(acc); err != nil {
		return nil, err
	}

	if acc.Role() == account.Delivery {
		c, courierErr := courier.NewCourier(acc.Username())
		if courierErr != nil {
			return nil, courierErr
		}
		if courierErr = h.state.Roster.Register(c); courierErr != nil {
			return nil, courierErr
		}
	}

	persist(ctx, h.logger, "sign up", h.uowFactory.Create(), func(uow AccountUoW) error {
		return uow.AccountRepository().Add(ctx, acc)
	})

	h.logger.Info("account registered",
		zap.String("username", acc.Username()),
		zap.Stringer("role", acc.Role()),
	)
	return acc, nil
}
