// Package postgres opens the GORM connection used by the Postgres snapshot mirror and
// prepares its schema.
//
// Usage:
//
//	db, err := postgres.Open(postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser,
//	    cfg.DBPassword, cfg.DBName, cfg.DBSslMode))
//	if err != nil {
//	    return err
//	}
//	defer postgres.Close(db)
//	mirror := snapshotrepo.NewGormSnapshotRepository(db)
package postgres

import (
	"errors"
	"fmt"
	"io"

	"setralog/internal/adapters/out/postgres/snapshotrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects to Postgres and migrates the snapshot schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, errors.Join(err, Close(db))
	}
	return db, nil
}

// Close releases the connection pool behind db. When the pool is not a *sql.DB it is
// closed through io.Closer if it implements it.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if sqlDB, err := db.DB(); err == nil {
		return sqlDB.Close()
	}
	if closer, ok := db.ConnPool.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Migrate creates or updates the tables used by the adapters in this package tree.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&snapshotrepo.SnapshotDTO{}); err != nil {
		return fmt.Errorf("migrate snapshots: %w", err)
	}
	return nil
}
