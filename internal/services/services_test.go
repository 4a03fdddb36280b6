package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated, migrated and seeded SQLite database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	_, err = database.Seed(db)
	require.NoError(t, err)
	return db
}

func countRestaurantPizzas(t *testing.T, db *gorm.DB, restaurantID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error)
	return count
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas(context.Background())

	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Melanie", pizzas[2].Name)
}

func TestGetAllPizzasEmpty(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RestaurantPizza{}).Error)
	require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Pizza{}).Error)

	pizzas, err := NewPizzaService(db).GetAllPizzas(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)
}

func TestGetPizzaByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	pizza, err := service.GetPizzaByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Geri", pizza.Name)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese, Pepperoni", pizza.Ingredients)

	_, err = service.GetPizzaByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)

	restaurants, err := NewRestaurantService(db).GetAllRestaurants(context.Background())

	require.NoError(t, err)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "Karen's Pizza Shack", restaurants[0].Name)
	assert.Empty(t, restaurants[0].RestaurantPizzas, "list must not load associations")
}

func TestGetRestaurantByIDPreloadsPizzas(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 15, RestaurantID: 1, PizzaID: 3}).Error)

	restaurant, err := NewRestaurantService(db).GetRestaurantByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Karen's Pizza Shack", restaurant.Name)
	require.Len(t, restaurant.RestaurantPizzas, 2)
	assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, 1, restaurant.RestaurantPizzas[0].Price)
	assert.Equal(t, "Melanie", restaurant.RestaurantPizzas[1].Pizza.Name)
	assert.Equal(t, 15, restaurant.RestaurantPizzas[1].Price)
	assert.Less(t, restaurant.RestaurantPizzas[0].ID, restaurant.RestaurantPizzas[1].ID)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewRestaurantService(db).GetRestaurantByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	require.NoError(t, db.Create(&models.RestaurantPizza{Price: 9, RestaurantID: 2, PizzaID: 1}).Error)
	require.Equal(t, int64(2), countRestaurantPizzas(t, db, 2))

	require.NoError(t, service.DeleteRestaurant(context.Background(), 2))

	assert.Equal(t, int64(0), countRestaurantPizzas(t, db, 2))
	_, err := service.GetRestaurantByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	// Other restaurants keep their pizzas
	assert.Equal(t, int64(1), countRestaurantPizzas(t, db, 1))

	assert.ErrorIs(t, service.DeleteRestaurant(context.Background(), 2), ErrRestaurantNotFound)
}

func TestDeleteRestaurantRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.RestaurantPizza{}))

	err := NewRestaurantService(db).DeleteRestaurant(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRestaurantNotFound)
	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Where("id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantPizzaService(db)

	created, err := service.CreateRestaurantPizza(context.Background(), models.NewRestaurantPizza{
		Price: 10, PizzaID: 1, RestaurantID: 3,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 10, created.Price)
	assert.Equal(t, "Emma", created.Pizza.Name)
	assert.Equal(t, "Kiki's Pizza", created.Restaurant.Name)
	assert.Equal(t, int64(2), countRestaurantPizzas(t, db, 3))
}

func TestCreateRestaurantPizzaMissingReferences(t *testing.T) {
	testCases := []struct {
		name     string
		input    models.NewRestaurantPizza
		expected error
	}{
		{
			name:     "missing pizza",
			input:    models.NewRestaurantPizza{Price: 10, PizzaID: 999, RestaurantID: 1},
			expected: ErrPizzaNotFound,
		},
		{
			name:     "missing restaurant",
			input:    models.NewRestaurantPizza{Price: 10, PizzaID: 1, RestaurantID: 999},
			expected: ErrRestaurantNotFound,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)

			_, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expected)
			var count int64
			require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
			assert.Equal(t, int64(3), count)
		})
	}
}

func TestCreateRestaurantPizzaPersistenceFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.RestaurantPizza{}))

	_, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(context.Background(), models.NewRestaurantPizza{
		Price: 10, PizzaID: 1, RestaurantID: 1,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPizzaNotFound)
	assert.NotErrorIs(t, err, ErrRestaurantNotFound)
}
