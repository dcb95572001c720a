package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	FoodItemRepoFactory interface {
		FoodItemRepository() ports.FoodItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	MenuUoW interface {
		TxManager
		FoodItemRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	UoW interface {
		TxManager
		AccountRepoFactory
		FoodItemRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
