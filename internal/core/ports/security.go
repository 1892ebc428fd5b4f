package ports

import (
	"time"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// PasswordHasher is a one-way hash/compare primitive.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenCodec issues and verifies bearer tokens. Verify returns
// domain.ErrInvalidToken for any bad signature, malformed or expired token.
type TokenCodec interface {
	Issue(id domain.Identity, ttl time.Duration) (string, error)
	Verify(token string) (*domain.Identity, error)
}
