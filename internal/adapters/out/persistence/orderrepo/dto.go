// Package orderrepo maps orders to the orders table and their lines to the
// order_lines log.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Customer string    `gorm:"size:64;not null;index"`
	Status   string    `gorm:"size:16;not null;index"`
	Courier  *string   `gorm:"size:64;index"`
	PlacedAt time.Time `gorm:"not null"`
	Lines    []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is one row of order_lines. Item name and price are copied so the
// log stays readable when the menu changes.
type LineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uint            `gorm:"not null"`
	ItemName  string          `gorm:"size:100;not null"`
	UnitPrice decimal.Decimal `gorm:"type:text;not null"`
	Quantity  int             `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	dto := OrderDTO{
		ID:       o.ID().Bytes(),
		Customer: o.Customer(),
		Status:   o.Status().String(),
		Courier:  o.Courier(),
		PlacedAt: o.PlacedAt(),
		Lines:    make([]LineDTO, 0, len(lines)),
	}

	for _, l := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			OrderID:   dto.ID,
			ItemID:    l.Item().ID(),
			ItemName:  l.Item().Name(),
			UnitPrice: l.Item().Price().Decimal(),
			Quantity:  l.Quantity(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := menu.RestoreFoodItem(l.ItemID, l.ItemName, price)
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.NewLine(item, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.Customer, lines, status, dto.Courier, dto.PlacedAt)
}
