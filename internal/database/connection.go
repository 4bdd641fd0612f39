package database

import (
	"fmt"
	"log"

	"gallery_store/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

// AutoMigrate is exported so tests and the seed script can run the same schema
// against their own connections.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ArtistProfile{},
		&models.Artwork{},
		&models.ArtworkImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.PageContent{},
		&models.AdminUser{},
	)
}
