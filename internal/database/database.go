// Package database manages the GORM connection to the ledger database.
// The advisory core only reads transactional data; schema ownership lives
// with the surrounding finance application. AutoMigrate keeps local sqlite
// databases usable out of the box.
package database

import (
	"fmt"
	"time"

	"fincoach/internal/config"
	"fincoach/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of GORM models the advisory core reads.
var allModels = []interface{}{
	&models.Transaction{},
	&models.Category{},
	&models.UserProfile{},
	&models.Goal{},
}

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens a connection using the configured driver.
func NewManager(cfg *config.Config) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // Required for pooled connections; harmless for direct ones
		}), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate creates any missing tables for the read models.
func (m *Manager) Migrate() error {
	return m.db.AutoMigrate(allModels...)
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
