package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/frasesia/frases-api/internal/api/handler"
	"github.com/frasesia/frases-api/internal/core/ports"
	"github.com/frasesia/frases-api/internal/infrastructure/config"
	redisdb "github.com/frasesia/frases-api/internal/infrastructure/db/redis"
)

// guard is the optional Idempotency-Key protection. A nil RequestGuard means
// phrase generation runs unguarded.
type guard struct {
	guard ports.RequestGuard
	check handler.HealthCheck
	close func() error
}

// openGuard connects to Redis when an address is configured. An unreachable
// Redis never aborts startup: the server runs unguarded and readiness reports
// the failure.
func openGuard(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) guard {
	g := guard{close: func() error { return nil }}

	rcfg := redisdb.Config{Addr: cfg.Addr, DB: cfg.DB, Timeout: cfg.Timeout}
	if !rcfg.Enabled() {
		return g
	}

	rdb, err := redisdb.Connect(ctx, rcfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unreachable, idempotency guard disabled")
		g.check = func(context.Context) error { return err }
		return g
	}

	g.guard = redisdb.NewIdempotencyGuard(rdb, cfg.IdempotencyTTL)
	g.check = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	g.close = rdb.Close
	log.Info().Str("addr", cfg.Addr).Msg("idempotency guard enabled")
	return g
}
