package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/config"
)

// NewPostgresPool opens a pool and checks that the PostGIS extension can be loaded.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := PostGISVersion(pingCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// PostGISVersion reports the available PostGIS extension version.
func PostGISVersion(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	var version *string
	err := pool.QueryRow(ctx,
		`SELECT default_version FROM pg_available_extensions WHERE name = 'postgis'`,
	).Scan(&version)
	if err != nil {
		return "", fmt.Errorf("postgis extension not available: %w", err)
	}
	if version == nil {
		return "", errors.New("postgis extension has no default version")
	}
	return *version, nil
}
