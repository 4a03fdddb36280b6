package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed fills the database with the initial restaurants, pizzas and prices.
// It does nothing when restaurants or pizzas already exist and reports whether it seeded.
func Seed(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, fmt.Errorf("counting restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, fmt.Errorf("counting pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	if err := db.Transaction(insertSeedData); err != nil {
		return false, err
	}
	log.Info("Database seeded successfully")
	return true, nil
}

// Reset deletes every row and seeds the database again
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Children first so the foreign keys never dangle
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clearing %T: %w", model, err)
			}
		}
		log.Info("Database cleared")
		return insertSeedData(tx)
	})
}

func insertSeedData(tx *gorm.DB) error {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	if err := tx.Create(&restaurants).Error; err != nil {
		return fmt.Errorf("seeding restaurants: %w", err)
	}

	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}
	if err := tx.Create(&pizzas).Error; err != nil {
		return fmt.Errorf("seeding pizzas: %w", err)
	}

	prices := make([]models.RestaurantPizza, 0, len(restaurants))
	for i := range restaurants {
		prices = append(prices, models.RestaurantPizza{
			Price:        1,
			RestaurantID: restaurants[i].ID,
			PizzaID:      pizzas[i].ID,
		})
	}
	if err := tx.Create(&prices).Error; err != nil {
		return fmt.Errorf("seeding restaurant pizzas: %w", err)
	}

	log.WithFields(logrus.Fields{
		"restaurants":       len(restaurants),
		"pizzas":            len(pizzas),
		"restaurant_pizzas": len(prices),
	}).Debug("Seed data inserted")
	return nil
}
