package ports

import (
	"context"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// GeneratePhraseInput carries the create-via-generation request.
type GeneratePhraseInput struct {
	OwnerID        int64
	Topic          string
	Lang           string // client preference, resolved with domain.ResolveLanguage
	IdempotencyKey string // optional
}

// UpdatePhraseInput replaces text and author of an owned phrase.
type UpdatePhraseInput struct {
	OwnerID  int64
	PhraseID int64
	Text     string
	Author   string
}

// PhraseService defines the use-case operations on phrases.
type PhraseService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Phrase, error)
	Generate(ctx context.Context, input GeneratePhraseInput) (*domain.Phrase, error)
	Update(ctx context.Context, input UpdatePhraseInput) error
	Delete(ctx context.Context, ownerID, phraseID int64) error
}
