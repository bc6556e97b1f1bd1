package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ylyas2004/react-backend/internal/cache"
	"github.com/ylyas2004/react-backend/internal/db"
	"github.com/ylyas2004/react-backend/internal/domain/venues"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Driver      string
	Addr        string
	SQLitePath  string
	MaxConns    int32
	MaxIdleTime string
	RedisAddr   string
	CacheTTL    time.Duration
}

// Container is the process-wide storage handle. It is built once at startup,
// handed to the application, and closed on shutdown.
type Container struct {
	Venues *venues.Repository

	// Pool is set when the Postgres driver is active.
	Pool    *pgxpool.Pool
	closers []func() error
}

// NewContainer wires repositories over an already opened store.
func NewContainer(store venues.Store) *Container {
	return &Container{
		Venues: venues.NewRepository(store),
	}
}

// Open connects the configured backend, applies migrations and optionally
// puts the Redis cache in front of the venue store.
func Open(cfg Config, logger *zap.SugaredLogger) (*Container, error) {
	var (
		store   venues.Store
		pool    *pgxpool.Pool
		closers []func() error
	)

	switch cfg.Driver {
	case DriverPostgres, "":
		p, err := db.New(cfg.Addr, cfg.MaxConns, cfg.MaxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		conn := stdlib.OpenDBFromPool(p)
		err = db.Migrate(conn, db.DialectPostgres)
		conn.Close()
		if err != nil {
			p.Close()
			return nil, err
		}
		pool = p
		closers = append(closers, func() error { p.Close(); return nil })
		store = venues.NewPostgresStore(p)
		logger.Info("database connection pool established")

	case DriverSQLite:
		conn, err := db.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.Migrate(conn, db.DialectSQLite); err != nil {
			conn.Close()
			return nil, err
		}
		closers = append(closers, conn.Close)
		store = venues.NewSQLiteStore(conn)
		logger.Infow("sqlite database opened", "path", cfg.SQLitePath)

	case DriverMemory:
		store = venues.NewMemoryStore()
		logger.Warn("using in-memory venue store; data is lost on restart")

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}

	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			closeAll(closers)
			return nil, err
		}
		closers = append(closers, rdb.Close)
		store = venues.NewCachedStore(store, cache.NewRedisCache(rdb, cfg.CacheTTL), logger)
		logger.Infow("venue cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL.String())
	}

	c := NewContainer(store)
	c.Pool = pool
	c.closers = closers
	return c, nil
}

// Close releases every connection opened by Open, newest first.
func (c *Container) Close() error {
	return closeAll(c.closers)
}

func closeAll(closers []func() error) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
