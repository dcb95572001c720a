package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// ErrItemIsStored is returned by Add for an item that already has an id.
var ErrItemIsStored = errors.New("food item is already stored")

// GormItemRepository implements FoodItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add inserts item and returns it carrying the id assigned by the store.
func (r *GormItemRepository) Add(ctx context.Context, item menu.FoodItem) (menu.FoodItem, error) {
	if err := item.Validate(); err != nil {
		return menu.FoodItem{}, err
	}
	if item.IsStored() {
		return menu.FoodItem{}, fmt.Errorf("%w: id %d", ErrItemIsStored, item.ID())
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return menu.FoodItem{}, err
	}
	return toDomain(dto)
}

// GetAll returns items in insertion order.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]menu.FoodItem, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
