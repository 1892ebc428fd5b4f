package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/frasesia/frases-api/internal/infrastructure/config"
)

func TestOpenGuard_Disabled(t *testing.T) {
	g := openGuard(context.Background(), config.RedisConfig{}, zerolog.Nop())

	require.Nil(t, g.guard)
	require.Nil(t, g.check)
	require.NoError(t, g.close())
}

func TestOpenGuard_UnreachableRedisKeepsServing(t *testing.T) {
	cfg := config.RedisConfig{
		Addr:           "127.0.0.1:1",
		IdempotencyTTL: time.Minute,
		Timeout:        200 * time.Millisecond,
	}

	g := openGuard(context.Background(), cfg, zerolog.Nop())

	require.Nil(t, g.guard)
	require.NotNil(t, g.check)
	require.Error(t, g.check(context.Background()))
	require.NoError(t, g.close())
}
