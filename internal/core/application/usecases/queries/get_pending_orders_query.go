package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery snapshots the order queue, oldest first.
//
// Example:
//
//	pending, err := handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range pending {
//	    fmt.Printf("%d. %s %s\n", o.Position, o.Customer, o.Total)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// OrderResponse is an order as shown to merchants and delivery people.
// Position is the 1-based queue position, 0 outside the queue.
type OrderResponse struct {
	Position int            `json:"position,omitempty"`
	ID       string         `json:"id"`
	Customer string         `json:"customer"`
	Status   string         `json:"status"`
	Courier  *string        `json:"courier,omitempty"`
	PlacedAt time.Time      `json:"placed_at"`
	Total    string         `json:"total"`
	Lines    []LineResponse `json:"lines"`
}

type LineResponse struct {
	Item      string `json:"item"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}
