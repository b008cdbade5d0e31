package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stayhub/models"
)

func dbDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		GetEnvDefault("DB_PORT", "5432"),
		GetEnvDefault("DB_SSLMODE", "disable"),
	)
}

// ConnectDB opens the Postgres connection and migrates the schema.
// The (room_id, date) unique index on bookings comes from the model
// tags and is the backstop for the booking conflict check.
func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Review{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
