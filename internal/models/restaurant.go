package models

// Restaurant represents a restaurant serving pizzas at its own prices
type Restaurant struct {
	ID      int    `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Summary returns the flat representation of the restaurant, without its associations
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// Detail returns the restaurant with every priced pizza embedded.
// RestaurantPizzas and their Pizza must be preloaded by the caller.
func (r Restaurant) Detail() RestaurantDetail {
	pizzas := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		pizzas = append(pizzas, rp.View())
	}
	return RestaurantDetail{
		RestaurantSummary: r.Summary(),
		RestaurantPizzas:  pizzas,
	}
}
