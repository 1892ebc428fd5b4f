package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/frasesia/frases-api/internal/core/domain"
)

var (
	listPhrasesSQL  = regexp.QuoteMeta(`SELECT id, texto, autor, created_at FROM frases WHERE usuario_id = $1 ORDER BY id DESC`)
	insertPhraseSQL = regexp.QuoteMeta(`INSERT INTO frases (texto, autor, usuario_id) VALUES ($1, $2, $3) RETURNING id, created_at`)
	updatePhraseSQL = regexp.QuoteMeta(`UPDATE frases SET texto = $1, autor = $2 WHERE id = $3 AND usuario_id = $4`)
	deletePhraseSQL = regexp.QuoteMeta(`DELETE FROM frases WHERE id = $1 AND usuario_id = $2`)
)

func TestPhraseRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(listPhrasesSQL).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "texto", "autor", "created_at"}).
			AddRow(int64(9), "nueve", "Yo", now).
			AddRow(int64(4), "cuatro", domain.GeneratedAuthor, now))

	got, err := repo.ListByOwner(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 9 || got[1].ID != 4 {
		t.Fatalf("unexpected phrases: %+v", got)
	}
	if got[0].OwnerID != 3 || got[1].Author != domain.GeneratedAuthor {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestPhraseRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	mock.ExpectQuery(listPhrasesSQL).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "texto", "autor", "created_at"}))

	got, err := repo.ListByOwner(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestPhraseRepository_ListByOwner_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	mock.ExpectQuery(listPhrasesSQL).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "texto", "autor", "created_at"}).
			AddRow(int64(1), "uno", "Yo", time.Now()).
			RowError(0, errors.New("broken row")))

	if _, err := repo.ListByOwner(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}
}

func TestPhraseRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(insertPhraseSQL).
		WithArgs("texto", domain.GeneratedAuthor, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	p := &domain.Phrase{Text: "texto", Author: domain.GeneratedAuthor, OwnerID: 3}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID != 11 || !p.CreatedAt.Equal(now) {
		t.Fatalf("expected id and timestamp to be filled, got %+v", p)
	}
}

func TestPhraseRepository_Create_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	mock.ExpectQuery(insertPhraseSQL).
		WithArgs("texto", "a", int64(3)).
		WillReturnError(errors.New("fk violation"))

	if err := repo.Create(context.Background(), &domain.Phrase{Text: "texto", Author: "a", OwnerID: 3}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPhraseRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"owned row", 1, nil},
		{"missing or foreign row", 0, domain.ErrPhraseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPhraseRepository(db)

			mock.ExpectExec(updatePhraseSQL).
				WithArgs("nuevo", "Yo", int64(5), int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Update(context.Background(), 3, 5, "nuevo", "Yo")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPhraseRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"owned row", 1, nil},
		{"missing or foreign row", 0, domain.ErrPhraseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPhraseRepository(db)

			mock.ExpectExec(deletePhraseSQL).
				WithArgs(int64(5), int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Delete(context.Background(), 3, 5)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPhraseRepository_Delete_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPhraseRepository(db)

	mock.ExpectExec(deletePhraseSQL).
		WithArgs(int64(5), int64(3)).
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), 3, 5)
	if err == nil || errors.Is(err, domain.ErrPhraseNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
