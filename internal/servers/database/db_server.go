package database

import (
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolioBackend/configs"
	"portfolioBackend/internal/models"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDB(config *configs.Config) *gorm.DB {
	once.Do(func() {
		initialize(config)
	})
	return db
}

func initialize(config *configs.Config) {
	path := config.Viper.GetString("database.path")
	var err error
	db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrate()
}

// migrate ensures the schema exists. AutoMigrate is idempotent, so
// repeated starts against the same file are safe.
func migrate() {
	err := db.AutoMigrate(
		&models.Message{},
		&models.Admin{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migrated successfully")
}

// Close releases the underlying sqlite handle. Called once during
// graceful shutdown.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
