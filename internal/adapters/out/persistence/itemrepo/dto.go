// Package itemrepo maps menu items to the items table.
package itemrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// ItemDTO is one row of the items table. Prices are stored as decimal text
// so no backend rounds them through a float.
type ItemDTO struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"size:100;not null"`
	Price decimal.Decimal `gorm:"type:text;not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(item menu.FoodItem) ItemDTO {
	return ItemDTO{
		ID:    item.ID(),
		Name:  item.Name(),
		Price: item.Price().Decimal(),
	}
}

func toDomain(dto ItemDTO) (menu.FoodItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.FoodItem{}, err
	}
	return menu.RestoreFoodItem(dto.ID, dto.Name, price)
}
