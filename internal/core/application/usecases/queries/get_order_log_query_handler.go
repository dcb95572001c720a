package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderLogQueryHandler reads the orders and order_lines tables directly.
//
// Example:
//
//	handler := NewGetOrderLogQueryHandler(db)
//	log, err := handler.Handle(ctx, NewGetOrderLogQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range log {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.Total)
//	}
type GetOrderLogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderLogQueryHandler(db *gorm.DB) GetOrderLogQueryHandler {
	return GetOrderLogQueryHandler{db: db}
}

// Handle returns orders oldest first, each with its lines in the order they
// were added.
func (h GetOrderLogQueryHandler) Handle(ctx context.Context, query GetOrderLogQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer,
			o.status,
			o.courier,
			o.placed_at,
			l.item_name,
			l.unit_price,
			l.quantity
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		ORDER BY o.placed_at, o.id, l.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	totals := make([]kernel.Money, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			customer  string
			status    string
			courier   *string
			placedAt  time.Time
			itemName  sql.NullString
			unitPrice decimal.NullDecimal
			quantity  sql.NullInt64
		)
		if err = rows.Scan(&id, &customer, &status, &courier, &placedAt, &itemName, &unitPrice, &quantity); err != nil {
			return nil, err
		}

		last := len(orders) - 1
		if last < 0 || orders[last].ID != id.String() {
			orders = append(orders, OrderResponse{
				ID:       id.String(),
				Customer: customer,
				Status:   status,
				Courier:  courier,
				PlacedAt: placedAt,
				Lines:    []LineResponse{},
			})
			totals = append(totals, kernel.Zero())
			last++
		}

		if !itemName.Valid {
			continue
		}

		price, priceErr := kernel.NewMoney(unitPrice.Decimal)
		if priceErr != nil {
			return nil, priceErr
		}
		qty := int(quantity.Int64)
		subtotal := price.Times(qty)

		orders[last].Lines = append(orders[last].Lines, LineResponse{
			Item:      itemName.String,
			UnitPrice: price.String(),
			Quantity:  qty,
			Subtotal:  subtotal.String(),
		})
		totals[last] = totals[last].Add(subtotal)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Total = totals[i].String()
	}
	return orders, nil
}
