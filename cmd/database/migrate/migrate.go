package migration

import (
	"fmt"
	"log"

	"Savora-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Restaurant{},
		&entities.MenuItem{},
		&entities.FullyBookedDate{},
		&entities.Cart{},
		&entities.CartLine{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Reservation{},
		&entities.Review{},
		&entities.WalletTransaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
