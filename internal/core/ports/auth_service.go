package ports

import (
	"context"

	"github.com/frasesia/frases-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.Account, error)
	// Login returns a signed bearer token for valid credentials.
	Login(ctx context.Context, email, password string) (string, error)
}
