package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Ingredients string

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Summary returns the flat representation of the pizza, without its associations
func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}
