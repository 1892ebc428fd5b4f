package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frasesia/frases-api/internal/core/domain"
)

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	query :=
		`INSERT INTO usuarios (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, created_at`

	account := &domain.Account{PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).
		Scan(&account.ID, &account.Email, &account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query :=
		`SELECT id, email, password_hash, created_at FROM usuarios
		 WHERE email = $1`

	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}
