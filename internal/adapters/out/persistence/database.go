// Package persistence opens the relational store and hands out gorm-backed
// units of work. SQLite is the default backend; postgres is used when
// configured.
package persistence

import (
	"context"
	"fmt"

	"foodorder/internal/adapters/out/persistence/accountrepo"
	"foodorder/internal/adapters/out/persistence/itemrepo"
	"foodorder/internal/adapters/out/persistence/orderrepo"
	"foodorder/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultSQLitePath = "food_ordering.db"
)

// Config selects and addresses the backend. DSN, when set, wins over the
// individual fields.
type Config struct {
	Driver   string
	DSN      string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "", DriverSQLite:
		path := c.DSN
		if path == "" {
			path = c.Path
		}
		if path == "" {
			path = DefaultSQLitePath
		}
		return sqlite.Open(path), nil
	case DriverPostgres:
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("db driver", fmt.Errorf("unsupported driver %q", c.Driver))
	}
}

func (c Config) isSQLite() bool {
	return c.Driver == "" || c.Driver == DriverSQLite
}

// Open connects to the configured backend and verifies the connection.
// Query errors and slow statements are reported through logger.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(logger, gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.isSQLite() {
		// sqlite allows a single writer; in-memory databases also live and
		// die with their only connection.
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s store: %w", dialector.Name(), err)
	}
	return db, nil
}

// Migrate creates or updates the users, items, orders and order_lines tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.UserDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
