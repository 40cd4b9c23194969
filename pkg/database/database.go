// Package database opens the PostgreSQL connection pool, applies schema
// migrations with goose and hands back a gorm handle bound to that pool.
package database

import (
	"context"
	"database/sql"
	"io/fs"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user-auth-api/pkg/config"
	"user-auth-api/pkg/database/migrations"
	"user-auth-api/pkg/logger"
)

const (
	driverName      = "pgx"
	gooseDialect    = "postgres"
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to PostgreSQL, migrates the schema and returns the gorm handle.
// Close the returned *sql.DB on shutdown.
func Open(ctx context.Context, cfg config.PostgresConfig, log *zap.SugaredLogger) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := sql.Open(driverName, cfg.Dsn())
	if err != nil {
		return nil, nil, errors.Wrap(err, "open postgres connection")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, errors.Wrap(err, "ping postgres")
	}

	if err = RunMigrations(ctx, sqlDB, migrations.Migrations); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	gormDB, err := NewGorm(postgres.New(postgres.Config{Conn: sqlDB}), log)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	return gormDB, sqlDB, nil
}

// NewGorm wraps any gorm dialector with the service defaults.
func NewGorm(dialector gorm.Dialector, log *zap.SugaredLogger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(log),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open gorm")
	}

	return gormDB, nil
}

func RunMigrations(ctx context.Context, db *sql.DB, migrationsFS fs.FS) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	return nil
}
