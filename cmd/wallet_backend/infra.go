package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/config"
	"github.com/SscSPs/healthconnect_wallet/internal/platform/lock"
	"github.com/SscSPs/healthconnect_wallet/internal/repositories/database/mongodb"
	"github.com/SscSPs/healthconnect_wallet/internal/repositories/database/pgsql"
	"github.com/SscSPs/healthconnect_wallet/internal/repositories/memory"
	"github.com/SscSPs/healthconnect_wallet/pkg/database"
)

// infrastructure bundles the store and lock selected by configuration along
// with whatever needs closing on shutdown.
type infrastructure struct {
	Repos   portsrepo.RepositoryProvider
	Locker  lock.Locker
	closers []func()
}

// Close releases connections in reverse order of creation.
func (i *infrastructure) Close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		i.closers[n]()
	}
}

func buildInfrastructure(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infrastructure, error) {
	infra := &infrastructure{}

	if err := infra.buildStore(ctx, cfg, logger); err != nil {
		infra.Close()
		return nil, err
	}
	if err := infra.buildLocker(ctx, cfg, logger); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}

func (i *infrastructure) buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		logger.Warn("Using in-memory wallet store; data is lost on restart")
		i.Repos = portsrepo.RepositoryProvider{WalletRepo: memory.NewWalletRepository()}

	case config.StoreMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, mongodb.NewRegistry(), cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
			return err
		}
		i.closers = append(i.closers, func() { database.CloseMongoClient(client) })

		repos, err := mongodb.NewRepositoryProvider(ctx, client.Database(cfg.MongoDatabase))
		if err != nil {
			logger.Error("Failed to prepare MongoDB collections", slog.String("error", err.Error()))
			return err
		}
		i.Repos = repos
		logger.Info("MongoDB wallet store ready", slog.String("database", cfg.MongoDatabase))

	case config.StorePostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				return err
			}
		}

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			return err
		}
		i.closers = append(i.closers, func() { database.ClosePgxPool(pool) })
		i.Repos = pgsql.NewRepositoryProvider(pool)
		logger.Info("Database connection pool established.")

	default:
		return fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
	return nil
}

func (i *infrastructure) buildLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	switch cfg.LockBackend {
	case config.LockLocal:
		i.Locker = lock.NewLocalLocker()

	case config.LockRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			return err
		}
		i.closers = append(i.closers, func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing Redis client", slog.String("error", err.Error()))
			}
		})
		i.Locker = lock.NewRedisLocker(client, cfg.LockTTL)
		logger.Info("Using Redis wallet locks", slog.String("addr", cfg.RedisAddr))

	default:
		return fmt.Errorf("unsupported lock backend %q", cfg.LockBackend)
	}
	return nil
}
