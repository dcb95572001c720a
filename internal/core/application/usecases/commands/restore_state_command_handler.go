package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"go.uber.org/zap"
)

// RestoreStateResult counts what was loaded.
type RestoreStateResult struct {
	Accounts       int
	MenuItems      int
	QueuedOrders   int
	AssignedOrders int
	SeededAdmin    bool
	SeededMenu     bool
}

type RestoreStateCommandHandler struct {
	uowFactory UoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewRestoreStateCommandHandler(uowFactory UoWFactory, st *state.State, logger *zap.Logger) RestoreStateCommandHandler {
	return RestoreStateCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "RestoreStateCommandHandler")),
	}
}

// Handle must run once, before any session starts. Unlike the other
// handlers it returns store errors: a process that cannot read its store
// must not start.
func (h RestoreStateCommandHandler) Handle(ctx context.Context, command RestoreStateCommand) (RestoreStateResult, error) {
	if err := command.Validate(); err != nil {
		return RestoreStateResult{}, err
	}

	var result RestoreStateResult
	err := inTx(ctx, h.uowFactory.Create(), func(uow UoW) error {
		var err error
		if result.Accounts, result.SeededAdmin, err = h.restoreAccounts(ctx, uow, command); err != nil {
			return err
		}
		if result.MenuItems, result.SeededMenu, err = h.restoreMenu(ctx, uow); err != nil {
			return err
		}
		result.QueuedOrders, result.AssignedOrders, err = h.restoreOrders(ctx, uow)
		return err
	})
	if err != nil {
		return RestoreStateResult{}, err
	}

	h.logger.Info("state restored",
		zap.Int("accounts", result.Accounts),
		zap.Int("menu_items", result.MenuItems),
		zap.Int("queued_orders", result.QueuedOrders),
		zap.Int("assigned_orders", result.AssignedOrders),
		zap.Bool("seeded_admin", result.SeededAdmin),
		zap.Bool("seeded_menu", result.SeededMenu),
	)
	return result, nil
}

func (h RestoreStateCommandHandler) restoreAccounts(
	ctx context.Context,
	uow UoW,
	command RestoreStateCommand,
) (int, bool, error) {
	repo := uow.AccountRepository()

	stored, err := repo.GetAll(ctx)
	if err != nil {
		return 0, false, err
	}
	if err = h.state.Accounts.Load(stored); err != nil {
		return 0, false, err
	}

	existing, err := h.state.Accounts.Get(command.AdminUsername())
	switch {
	case err == nil:
		if existing.Role() != account.Admin {
			h.logger.Warn("configured admin username belongs to a non-admin account",
				zap.String("username", existing.Username()),
				zap.Stringer("role", existing.Role()),
			)
		}
		return len(stored), false, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, false, err
	}

	admin, err := account.NewAccount(command.AdminUsername(), command.AdminPassword(), account.Admin, time.Now())
	if err != nil {
		return 0, false, err
	}
	if err = repo.Add(ctx, admin); err != nil {
		return 0, false, err
	}
	if err = h.state.Accounts.Register(admin); err != nil {
		return 0, false, err
	}
	return len(stored) + 1, true, nil
}

func (h RestoreStateCommandHandler) restoreMenu(ctx context.Context, uow UoW) (int, bool, error) {
	repo := uow.FoodItemRepository()

	items, err := repo.GetAll(ctx)
	if err != nil {
		return 0, false, err
	}

	seeded := false
	if len(items) == 0 {
		seeded = true
		for _, item := range menu.DefaultItems() {
			stored, addErr := repo.Add(ctx, item)
			if addErr != nil {
				return 0, false, addErr
			}
			items = append(items, stored)
		}
	}

	for _, item := range items {
		if err = h.state.Menu.AddItem(item); err != nil {
			return 0, false, err
		}
	}
	return len(items), seeded, nil
}

func (h RestoreStateCommandHandler) restoreOrders(ctx context.Context, uow UoW) (int, int, error) {
	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.Queued, order.Assigned)
	if err != nil {
		return 0, 0, err
	}

	queued := 0
	active := make(map[string]kernel.UUID)
	for _, o := range orders {
		switch o.Status() {
		case order.Queued:
			if err = h.state.Queue.Enqueue(o); err != nil {
				return 0, 0, err
			}
			queued++
		case order.Assigned:
			active[*o.Courier()] = o.ID()
		}
	}

	for _, acc := range h.state.Accounts.List() {
		if acc.Role() != account.Delivery {
			continue
		}

		var activeOrder *kernel.UUID
		if id, ok := active[acc.Username()]; ok {
			activeOrder = &id
			delete(active, acc.Username())
		}

		c, courierErr := courier.RestoreCourier(acc.Username(), acc.IsOnline() || activeOrder != nil, activeOrder)
		if courierErr != nil {
			return 0, 0, courierErr
		}
		if courierErr = h.state.Roster.Register(c); courierErr != nil {
			return 0, 0, courierErr
		}
		syncPresence(h.state, h.logger, c)
	}

	for username, id := range active {
		h.logger.Warn("assigned order belongs to an unknown courier",
			zap.String("courier", username),
			zap.Stringer("order_id", id),
		)
	}

	return queued, len(orders) - queued, nil
}
