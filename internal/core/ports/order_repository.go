package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository persists orders together with their line-item log.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the status and courier of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus returns matching orders oldest first.
	GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
