package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/frasesia/frases-api/internal/api/handler"
	"github.com/frasesia/frases-api/internal/core/ports"
	"github.com/frasesia/frases-api/internal/infrastructure/config"
	mongodb "github.com/frasesia/frases-api/internal/infrastructure/db/mongo"
	"github.com/frasesia/frases-api/internal/infrastructure/db/postgres"
)

// store bundles the repositories of whichever backend STORE_DRIVER selects.
type store struct {
	name     string
	accounts ports.AccountRepository
	phrases  ports.PhraseRepository
	ping     handler.HealthCheck
	close    func(context.Context) error
}

// openStore connects to the configured backend and prepares its schema.
// Any failure here aborts startup.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

		return &store{
			name:     "mongodb",
			accounts: mongodb.NewAccountRepository(db),
			phrases:  mongodb.NewPhraseRepository(db),
			ping:     func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close:    client.Disconnect,
		}, nil

	default:
		db, err := postgres.Connect(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := postgres.RunMigrations(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info().Str("host", cfg.Postgres.Host).Str("database", cfg.Postgres.Database).Msg("connected to postgres")

		return &store{
			name:     "postgres",
			accounts: postgres.NewAccountRepository(db),
			phrases:  postgres.NewPhraseRepository(db),
			ping:     db.PingContext,
			close:    func(context.Context) error { return db.Close() },
		}, nil
	}
}
