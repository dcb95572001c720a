package menu

import "foodorder/internal/core/domain/model/kernel"

// DefaultItems is the catalog seeded into an empty store.
func DefaultItems() []FoodItem {
	seed := []struct {
		name  string
		price string
	}{
		{"Burger", "5.99"},
		{"Pizza", "8.99"},
		{"Salad", "3.99"},
	}

	items := make([]FoodItem, 0, len(seed))
	for _, s := range seed {
		item, err := NewFoodItem(s.name, kernel.MustMoney(s.price))
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	return items
}
