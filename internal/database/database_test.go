package database

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDatabase(DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	return db
}

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing parameters",
			config:   DatabaseConfig{Driver: "sqlite3", Path: "app.db?cache=shared"},
			expected: "app.db?cache=shared&_foreign_keys=on",
		},
		{
			name: "postgres from fields",
			config: DatabaseConfig{Driver: "postgresql", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "pizzas", SSLMode: "disable"},
			expected: "host=db user=pizza password=secret dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins over fields",
			config:   DatabaseConfig{Driver: "postgres", URL: "postgres://u:p@db:5432/pizzas", Host: "ignored"},
			expected: "postgres://u:p@db:5432/pizzas",
		},
		{
			name:     "mysql",
			config:   DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", User: "pizza", Password: "secret", Name: "pizzas"},
			expected: "pizza:secret@tcp(db:3306)/pizzas?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
		{
			name:     "sqlite url overrides the path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db", URL: "sqlite:///data/pizzas.db?cache=shared"},
			expected: "data/pizzas.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "bare sqlite url is in memory",
			config:   DatabaseConfig{Driver: "sqlite", URL: "sqlite://"},
			expected: ":memory:?_foreign_keys=on",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://pizza:hunter2@db/pizzas", Password: "hunter2"}

	out := cfg.String()

	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "[REDACTED]")
}

func TestMaskURL(t *testing.T) {
	assert.Equal(t, "postgres://pizza:xxxxx@db/pizzas", MaskURL("postgres://pizza:hunter2@db/pizzas"))
	assert.Equal(t, "postgres://pizza@db/pizzas", MaskURL("postgres://pizza@db/pizzas"))
	assert.Equal(t, "", MaskURL(""))
}

func TestDriverFromURL(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{"postgres://db/pizzas", "postgres"},
		{"postgresql://db/pizzas", "postgres"},
		{"mysql://db/pizzas", "mysql"},
		{"sqlite:///app.db", "sqlite"},
	}
	for _, tt := range testCases {
		driver, err := DriverFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.expected, driver, tt.url)
	}

	_, err := DriverFromURL("oracle://db/orcl")
	assert.Error(t, err)
	_, err = DriverFromURL("/just/a/path")
	assert.Error(t, err)
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSeedOnlyOnce(t *testing.T) {
	db := openTestDB(t)

	seeded, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = Seed(db)
	require.NoError(t, err)
	assert.False(t, seeded)

	var restaurants, pizzas, prices int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&prices)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), prices)
}

func TestResetRestoresSeedData(t *testing.T) {
	db := openTestDB(t)
	_, err := Seed(db)
	require.NoError(t, err)

	extra := models.Restaurant{Name: "Extra", Address: "nowhere"}
	require.NoError(t, db.Create(&extra).Error)

	require.NoError(t, Reset(db))

	var names []string
	require.NoError(t, db.Model(&models.Restaurant{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Karen's Pizza Shack", "Sanjay's Pizza", "Kiki's Pizza"}, names)
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := openTestDB(t)

	err := db.Create(&models.RestaurantPizza{Price: 5, RestaurantID: 999, PizzaID: 999}).Error

	assert.Error(t, err)
}

func TestPriceCheckConstraint(t *testing.T) {
	db := openTestDB(t)
	_, err := Seed(db)
	require.NoError(t, err)

	var restaurant models.Restaurant
	var pizza models.Pizza
	require.NoError(t, db.First(&restaurant).Error)
	require.NoError(t, db.First(&pizza).Error)

	err = db.Create(&models.RestaurantPizza{Price: 0, RestaurantID: restaurant.ID, PizzaID: pizza.ID}).Error

	assert.Error(t, err)
}
