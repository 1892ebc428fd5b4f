package ports

import (
	"context"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// GenerationRequest is what the phrase service asks the text generator for.
type GenerationRequest struct {
	Topic    string
	Language domain.Language
	Prompt   string
}

// PhraseGenerator is an external text-completion provider.
type PhraseGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// RequestGuard claims client-supplied idempotency keys per account.
// Claim reports false when the key is already held.
type RequestGuard interface {
	Claim(ctx context.Context, accountID int64, key string) (bool, error)
	Release(ctx context.Context, accountID int64, key string) error
}
