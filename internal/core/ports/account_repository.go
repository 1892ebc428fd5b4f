package ports

import (
	"context"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// AccountRepository persists accounts. Create must return domain.ErrEmailTaken
// on a uniqueness violation; FindByEmail returns domain.ErrAccountNotFound.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
