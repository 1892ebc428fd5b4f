package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 10 * time.Minute

// IdempotencyGuard claims Idempotency-Key values per account.
// Key format: idem:<account_id>:<key>
type IdempotencyGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyGuard creates a guard whose claims expire after ttl.
func NewIdempotencyGuard(client redis.Cmdable, ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyGuard{client: client, ttl: ttl}
}

// Claim reports whether this is the first request seen with the key.
func (g *IdempotencyGuard) Claim(ctx context.Context, accountID int64, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(accountID, key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency claim: %w", err)
	}
	return ok, nil
}

// Release forgets a claim so the client may retry with the same key.
func (g *IdempotencyGuard) Release(ctx context.Context, accountID int64, key string) error {
	if err := g.client.Del(ctx, g.key(accountID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (g *IdempotencyGuard) key(accountID int64, key string) string {
	return fmt.Sprintf("idem:%d:%s", accountID, key)
}
