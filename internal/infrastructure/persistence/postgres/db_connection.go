// Package postgres manages the GORM database handle shared by a service's
// repositories.
package postgres

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecomovil/platform/internal/config"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(cfg *config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.ErrInvalidConfig.WithMessagef("database configuration is missing")
	}

	log.Info(context.Background(), "connecting to PostgreSQL", logger.Fields{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.Database,
	})

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}

	return db, nil
}
