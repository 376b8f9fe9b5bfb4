package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "havahills/backoffice/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used for team chat and runs
// the chat migration.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.ChatMessage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate chat schema: %w", err)
	}

	PgDB = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}
