package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/frasesia/frases-api/internal/core/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = db.Close()
	})
	return db, mock
}

var (
	insertAccountSQL = regexp.QuoteMeta(`INSERT INTO usuarios (email, password_hash) VALUES ($1, $2) RETURNING id, email, created_at`)
	selectAccountSQL = regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM usuarios WHERE email = $1`)
)

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(insertAccountSQL).
		WithArgs("a@x.com", "digest").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at"}).AddRow(int64(42), "a@x.com", now))

	got, err := repo.Create(context.Background(), "a@x.com", "digest")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Email != "a@x.com" || got.PasswordHash != "digest" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestAccountRepository_Create_EmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(insertAccountSQL).
		WithArgs("a@x.com", "digest").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"})

	if _, err := repo.Create(context.Background(), "a@x.com", "digest"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountRepository_Create_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(insertAccountSQL).
		WithArgs("a@x.com", "digest").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), "a@x.com", "digest")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("generic failure must not look like a duplicate email")
	}
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(selectAccountSQL).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(7), "a@x.com", "digest", now))

	got, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != 7 || got.PasswordHash != "digest" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestAccountRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(selectAccountSQL).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.FindByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
