package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"authkit/auth"
	"authkit/internal/config"
	"authkit/internal/httpapi"
	"authkit/internal/logging"
	"authkit/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Env)
	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	provider := store.NewProvider(st).WithLogger(logger)
	tokens := auth.NewTokenService([]byte(cfg.AuthSecret), cfg.TokenExpirationHours, logger)
	auther := auth.NewAuthenticator(provider, tokens).WithLogger(logger)

	app := httpapi.New(httpapi.Config{ProtectedMessage: cfg.ProtectedMessage}, st, auther, logger)

	logger.Info("server listening", "port", cfg.Port, "driver", cfg.DBDriver)
	return app.Listen(":" + cfg.Port)
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	opts := []store.Option{}
	if cfg.BcryptCost > 0 {
		opts = append(opts, store.WithBcryptCost(cfg.BcryptCost))
	}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		if err := store.MigratePostgres(cfg.DBURL); err != nil {
			return nil, err
		}
		pool, err := store.NewPostgresPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(pool, opts...), nil

	default:
		sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		db := bun.NewDB(sqldb, sqlitedialect.New())
		s := store.NewBunStore(db, opts...)
		if err := s.Init(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
}
