package dbhelper

import (
	"fmt"
	"log"
	"os"
	"time"

	"outfitapi/models"
	"outfitapi/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dsn() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		services.GetEnv("DB_USERNAME", ""),
		services.GetEnv("DB_PASSWORD", ""),
		services.GetEnv("DB_HOST", "localhost"),
		services.GetEnv("DB_PORT", "5432"),
		services.GetEnv("DB_NAME", ""),
		services.GetEnv("DB_SSLMODE", "disable"),
	)
}

// OpenDB connects, tunes the pool and migrates the closet tables.
func OpenDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database is not reachable: %w", err)
	}
	if err := Migrate(db, &models.Garment{}); err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDB() *gorm.DB {
	db, err := OpenDB()
	if err != nil {
		log.Fatal(err)
	}
	return db
}

func setTestEnv() {
	defaults := map[string]string{
		"DB_USERNAME": "outfit",
		"DB_PASSWORD": "outfit",
		"DB_HOST":     "localhost",
		"DB_NAME":     "outfit_test",
		"DB_PORT":     "5432",
	}
	for key, value := range defaults {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// SetupTestDB returns nil when no test database is reachable, callers skip then.
func SetupTestDB() *gorm.DB {
	setTestEnv()
	db, err := OpenDB()
	if err != nil {
		log.Printf("Test database unavailable: %v", err)
		return nil
	}
	return db
}
