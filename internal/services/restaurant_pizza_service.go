package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza stores a new restaurant pizza and returns it with its Pizza and Restaurant loaded.
	// It returns ErrPizzaNotFound or ErrRestaurantNotFound when a referenced row does not exist.
	CreateRestaurantPizza(ctx context.Context, input models.NewRestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input models.NewRestaurantPizza) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, input.PizzaID)
		if err != nil {
			return err
		}
		restaurant, err := findRestaurant(tx, input.RestaurantID)
		if err != nil {
			return err
		}

		rp := models.RestaurantPizza{
			Price:        input.Price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Create(&rp).Error; err != nil {
			return fmt.Errorf("creating restaurant pizza: %w", err)
		}

		// Attached after the insert so gorm does not try to upsert them
		rp.Pizza = pizza
		rp.Restaurant = restaurant
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}
