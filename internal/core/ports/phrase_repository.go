package ports

import (
	"context"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// PhraseRepository persists phrases. Every read and mutation is scoped by owner;
// Update and Delete match on (id, owner) in a single statement and return
// domain.ErrPhraseNotFound when nothing matched.
type PhraseRepository interface {
	// ListByOwner returns the owner's phrases, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Phrase, error)
	Create(ctx context.Context, p *domain.Phrase) error
	Update(ctx context.Context, ownerID, phraseID int64, text, author string) error
	Delete(ctx context.Context, ownerID, phraseID int64) error
}
