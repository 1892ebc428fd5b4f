package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frasesia/frases-api/internal/core/domain"
)

type PhraseRepository struct {
	db DBTX
}

func NewPhraseRepository(db DBTX) *PhraseRepository {
	return &PhraseRepository{db: db}
}

func (r *PhraseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Phrase, error) {
	query :=
		`SELECT id, texto, autor, created_at FROM frases
		 WHERE usuario_id = $1
		 ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	phrases := []domain.Phrase{}
	for rows.Next() {
		p := domain.Phrase{OwnerID: ownerID}
		if err := rows.Scan(&p.ID, &p.Text, &p.Author, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		phrases = append(phrases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return phrases, nil
}

// Create inserts the phrase and fills in its id and creation time.
func (r *PhraseRepository) Create(ctx context.Context, p *domain.Phrase) error {
	query :=
		`INSERT INTO frases (texto, autor, usuario_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, p.Text, p.Author, p.OwnerID).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update matches on id and owner in one statement; no row means the phrase
// is missing or belongs to someone else.
func (r *PhraseRepository) Update(ctx context.Context, ownerID, phraseID int64, text, author string) error {
	query :=
		`UPDATE frases SET texto = $1, autor = $2
		 WHERE id = $3 AND usuario_id = $4`

	res, err := r.db.ExecContext(ctx, query, text, author, phraseID, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PhraseRepository) Delete(ctx context.Context, ownerID, phraseID int64) error {
	query :=
		`DELETE FROM frases
		 WHERE id = $1 AND usuario_id = $2`

	res, err := r.db.ExecContext(ctx, query, phraseID, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return domain.ErrPhraseNotFound
	}
	return nil
}
