// Package gormstore implements the document store on top of GORM, backed by SQLite or PostgreSQL.
// Live queries are served by re-running watched queries after every committed write.
package gormstore

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/lifecycle"
	"canteen/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSQLiteDSN      = "file:canteen.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	dbPoolMonitorInterval = 5 * time.Second
	dbPoolWarnThreshold   = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database, migrates the schema and ties the pool to the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the configured driver and migrates the schema. It is shared by the
// service and the admin CLI.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	driver := constants.DriverSQLite
	dsn := defaultSQLiteDSN
	if cfg.Local != nil {
		if cfg.Local.Driver != "" {
			driver = strings.ToLower(cfg.Local.Driver)
		}
		if cfg.Local.DSN != "" {
			dsn = cfg.Local.DSN
		}
	}

	gormLogger := newGormSlogLogger(log, cfg)

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case constants.DriverSQLite:
		db, err = openSQLite(dsn, gormLogger)
	case constants.DriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is required for the postgres driver")
		}
		db, err = pgLib.New(cfg.Postgres)
		if err == nil {
			db = db.Session(&gorm.Session{
				SkipDefaultTransaction: true,
				Logger:                 gormLogger,
			})
		}
	default:
		return nil, errors.Errorf("unsupported local driver: %s", driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", driver)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Document store opened", slog.String("driver", driver))

	return db, nil
}

// openSQLite uses a single connection: SQLite serializes writers anyway and an in-memory
// database exists only as long as its connection.
func openSQLite(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates every table of the local store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur
			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= dbPoolWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Database pool wait",
				slog.Int64("waits", waits),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
			)
		}
	}
}
