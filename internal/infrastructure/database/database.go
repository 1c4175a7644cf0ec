package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rodamoinho/recibos-api/internal/config"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/storage"
)

// Connect opens the configured database. The service runs locally for a
// single operator, so a SQLite file is the default; PostgreSQL is
// available for shared deployments.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q (use sqlite or postgres)", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Connected to database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the persistence schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&storage.KVEntry{})
}
