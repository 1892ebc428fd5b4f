package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frasesia/frases-api/internal/api"
	"github.com/frasesia/frases-api/internal/api/handler"
	"github.com/frasesia/frases-api/internal/api/metrics"
	"github.com/frasesia/frases-api/internal/core/service"
	"github.com/frasesia/frases-api/internal/infrastructure/config"
	"github.com/frasesia/frases-api/internal/infrastructure/gemini"
	"github.com/frasesia/frases-api/internal/infrastructure/security"
	"github.com/frasesia/frases-api/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

//	@title						Frases API
//	@version					1.0
//	@description				Account-scoped inspirational phrases generated with Gemini.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "frases-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Env:     cfg.Env,
		Service: "frases-api",
	})

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Error().Err(err).Str("store", st.name).Msg("store close failed")
		}
	}()

	checks := map[string]handler.HealthCheck{st.name: st.ping}

	g := openGuard(ctx, cfg.Redis, logger.Component("redis"))
	defer g.close()
	if g.check != nil {
		checks["redis"] = g.check
	}

	generator, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	if err != nil {
		return err
	}

	tokens := security.NewJWTCodec(cfg.JWTSecret)
	authService := service.NewAuthService(
		st.accounts,
		security.NewBcryptHasher(security.DefaultBcryptCost),
		tokens,
		cfg.TokenTTL,
		logger.Component("auth"),
	)
	phraseService := service.NewPhraseService(
		st.phrases,
		metrics.InstrumentGenerator(generator),
		g.guard,
		cfg.Gemini.Timeout,
		logger.Component("phrases"),
	)

	e := api.NewRouter(api.RouterDeps{
		AuthService:   authService,
		PhraseService: phraseService,
		Tokens:        tokens,
		HealthChecks:  checks,
		Logger:        logger.Component("http"),
		CORSOrigins:   cfg.CORSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", st.name).Msg("http: starting server")
		errCh <- e.Start(":" + cfg.Port)
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http: server shutdown error")
		}

	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info().Msg("server stopped")
	return nil
}
