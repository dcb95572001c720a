package menu

import (
	"sync"

	"foodorder/internal/pkg/errs"
)

// Menu is the ordered catalog of a single merchant. Items keep insertion
// order and are selected on screen by 1-based position.
type Menu struct {
	mu    sync.RWMutex
	items []FoodItem
}

// New returns an empty menu. Items are added with AddItem, which validates
// each one.
func New() *Menu {
	return &Menu{}
}

// AddItem appends item to the end of the menu.
func (m *Menu) AddItem(item FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

// List returns the items in display order.
func (m *Menu) List() []FoodItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FoodItem, len(m.items))
	copy(out, m.items)
	return out
}

// ItemAt returns the item shown at 1-based position index.
func (m *Menu) ItemAt(index int) (FoodItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 1 || index > len(m.items) {
		return FoodItem{}, errs.NewValueIsOutOfRangeError("menu item number", index, 1, len(m.items))
	}
	return m.items[index-1], nil
}

func (m *Menu) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
