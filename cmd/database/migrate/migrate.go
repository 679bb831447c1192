package migration

import (
	"Recipe-Share-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBook{}); err != nil {
		log.Fatalf("Error migrating recipe book database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBookEntry{}); err != nil {
		log.Fatalf("Error migrating recipe book entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
