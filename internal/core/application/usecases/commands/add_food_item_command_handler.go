package commands

import (
	"context"

	"foodorder/internal/core/application/state"
	"foodorder/internal/core/domain/model/menu"

	"go.uber.org/zap"
)

type AddFoodItemCommandHandler struct {
	uowFactory MenuUoWFactory
	state      *state.State
	logger     *zap.Logger
}

func NewAddFoodItemCommandHandler(uowFactory MenuUoWFactory, st *state.State, logger *zap.Logger) AddFoodItemCommandHandler {
	return AddFoodItemCommandHandler{
		uowFactory: uowFactory,
		state:      st,
		logger:     logger.With(zap.String("component", "AddFoodItemCommandHandler")),
	}
}

// Handle stores the item first so the menu shows the id assigned by the
// store. If the store is unreachable the item is still appended, unstored.
func (h AddFoodItemCommandHandler) Handle(ctx context.Context, command AddFoodItemCommand) (menu.FoodItem, error) {
	if err := command.Validate(); err != nil {
		return menu.FoodItem{}, err
	}

	item := command.Item()
	persist(ctx, h.logger, "add food item", h.uowFactory.Create(), func(uow MenuUoW) error {
		stored, err := uow.FoodItemRepository().Add(ctx, item)
		if err != nil {
			return err
		}
		item = stored
		return nil
	})

	if err := h.state.Menu.AddItem(item); err != nil {
		return menu.FoodItem{}, err
	}

	h.logger.Info("food item added",
		zap.Uint("id", item.ID()),
		zap.String("name", item.Name()),
		zap.Stringer("price", item.Price()),
	)
	return item, nil
}
