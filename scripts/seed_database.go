package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete every row before seeding")
	path := flag.String("path", "", "SQLite file to seed (overrides DB_PATH and DATABASE_URL)")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*reset, *path); err != nil {
		log.Fatal(err)
	}
}

// run seeds the configured database and prints the resulting row counts.
// The connection is closed before returning, on success or failure.
func run(reset bool, path string) error {
	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig := conf.Database()
	if path != "" {
		dbConfig.Driver = "sqlite"
		dbConfig.URL = ""
		dbConfig.Path = path
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	if reset {
		if err := database.Reset(db); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
		fmt.Println("✓ Database reset and seeded")
	} else {
		seeded, err := database.Seed(db)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		if !seeded {
			fmt.Println("Database already has data, use -reset to start over")
		} else {
			fmt.Println("✓ Database seeded")
		}
	}

	counts := []struct {
		label string
		model any
	}{
		{"Restaurants", &models.Restaurant{}},
		{"Pizzas", &models.Pizza{}},
		{"Restaurant pizzas", &models.RestaurantPizza{}},
	}
	for _, c := range counts {
		n, err := count(db, c.model)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", c.label, err)
		}
		fmt.Printf("%s: %d\n", c.label, n)
	}
	return nil
}

func count(db *gorm.DB, model any) (int64, error) {
	var n int64
	err := db.Model(model).Count(&n).Error
	return n, err
}
