package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the sqlite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Generated timestamps are always UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors. The backend serves a
	// single user, so this does not limit throughput in practice.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Account{}, Transaction{}, RecurringTransaction{}, MatchRule{}, Settings{})
	if err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	// Replace the generic gorm error so that API consumers get a
	// helpful message
	err = db.Callback().Query().After("*").Register("pocketledger:not_found", func(db *gorm.DB) {
		if errors.Is(db.Error, gorm.ErrRecordNotFound) {
			db.Error = ErrResourceNotFound
		}
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}
