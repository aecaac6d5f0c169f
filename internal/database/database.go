package database

import (
	"fmt"
	"time"

	"valuation-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return &out
}

// Open opens a Postgres connection with pool settings applied
func Open(dsn string, opts *Options) (*gorm.DB, error) {
	opts = opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
	return db, nil
}

// Initialize opens the admin database and creates the shared catalog schema
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	db, err := Open(dsn, opts)
	if err != nil {
		return nil, err
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts == nil || !opts.SkipMigrate {
		if err := db.AutoMigrate(models.AdminModels()...); err != nil {
			return nil, fmt.Errorf("auto-migrate admin schema: %w", err)
		}
	}

	return db, nil
}

// MigrateTenant creates the per-organization schema in a tenant database
func MigrateTenant(db *gorm.DB) error {
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	if err := db.AutoMigrate(models.TenantModels()...); err != nil {
		return fmt.Errorf("auto-migrate tenant schema: %w", err)
	}
	return nil
}

// Close releases the pool behind a gorm handle
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
