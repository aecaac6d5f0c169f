package database

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var databaseNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// Provisioner creates, opens and drops tenant databases on the admin server.
// Database names are validated before they reach any DDL statement.
type Provisioner struct {
	admin  *gorm.DB
	dsnFor func(dbName string) string
	opts   *Options
}

// NewProvisioner creates a provisioner issuing DDL through the admin connection
func NewProvisioner(admin *gorm.DB, dsnFor func(dbName string) string, opts *Options) *Provisioner {
	return &Provisioner{admin: admin, dsnFor: dsnFor, opts: opts}
}

// ValidateDatabaseName rejects names that are not plain lowercase identifiers
func ValidateDatabaseName(name string) error {
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	return nil
}

// Create creates the database and its tenant schema. A database whose schema
// cannot be migrated is dropped again before returning the error.
func (p *Provisioner) Create(ctx context.Context, dbName string) error {
	if err := ValidateDatabaseName(dbName); err != nil {
		return err
	}

	// CREATE DATABASE cannot take bind parameters; the name is validated above
	if err := p.admin.WithContext(ctx).Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, dbName)).Error; err != nil {
		return fmt.Errorf("create database %s: %w", dbName, err)
	}

	db, err := p.Open(dbName)
	if err != nil {
		p.dropQuietly(ctx, dbName)
		return err
	}
	err = MigrateTenant(db.WithContext(ctx))
	_ = Close(db)
	if err != nil {
		p.dropQuietly(ctx, dbName)
		return err
	}

	logrus.WithField("database", dbName).Info("Provisioned tenant database")
	return nil
}

// Open opens a pooled connection to an existing tenant database
func (p *Provisioner) Open(dbName string) (*gorm.DB, error) {
	if err := ValidateDatabaseName(dbName); err != nil {
		return nil, err
	}
	db, err := Open(p.dsnFor(dbName), p.opts)
	if err != nil {
		return nil, fmt.Errorf("open tenant database %s: %w", dbName, err)
	}
	return db, nil
}

// Drop removes a tenant database, terminating open connections to it
func (p *Provisioner) Drop(ctx context.Context, dbName string) error {
	if err := ValidateDatabaseName(dbName); err != nil {
		return err
	}
	if err := p.admin.WithContext(ctx).Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s" WITH (FORCE)`, dbName)).Error; err != nil {
		return fmt.Errorf("drop database %s: %w", dbName, err)
	}
	logrus.WithField("database", dbName).Warn("Dropped tenant database")
	return nil
}

func (p *Provisioner) dropQuietly(ctx context.Context, dbName string) {
	if err := p.Drop(ctx, dbName); err != nil {
		logrus.WithError(err).WithField("database", dbName).Error("Failed to clean up partially provisioned database")
	}
}
