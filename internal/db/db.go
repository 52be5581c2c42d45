package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/learnlog/internal/config"
	"github.com/balkashynov/learnlog/internal/models"
)

var DB *gorm.DB

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session")
)

// Initialize sets up the database connection and runs migrations
func Initialize(conf config.DatabaseConfig) error {
	dialector, err := openDialector(conf)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// openDialector picks the gorm driver for the configured backend
func openDialector(conf config.DatabaseConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case "postgres":
		if conf.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires a dsn")
		}
		return postgres.Open(conf.DSN), nil
	case "sqlite", "":
		if conf.Path == "" {
			return nil, fmt.Errorf("sqlite driver requires a path")
		}
		// Ensure the directory exists
		if err := os.MkdirAll(filepath.Dir(conf.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return sqlite.Open(conf.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(&models.Session{})
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		DB = nil
		return sqlDB.Close()
	}
	return nil
}
