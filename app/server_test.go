package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/990663236/veritext/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubScorer stands in for the classifier in handler tests.
type stubScorer struct {
	score    float64
	words    []string
	fallback bool
}

func (s stubScorer) Score(text string) (float64, []string) { return s.score, s.words }

func (s stubScorer) Fallback() bool { return s.fallback }

func newMockServer(t *testing.T, clf scorer) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewServer(db, clf), mock
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet db expectations: %v", err)
	}
}

func TestResolveKnownToken(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	mock.ExpectQuery(`SELECT id, email\s+FROM users\s+WHERE token =`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(7, "user@example.com"))

	identity, err := server.Resolve(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if identity.ID != 7 || identity.Email != "user@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	expectMet(t, mock)
}

func TestResolveUnknownToken(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	mock.ExpectQuery(`SELECT id, email\s+FROM users\s+WHERE token =`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := server.Resolve(context.Background(), "nope")
	if !errors.Is(err, auth.ErrUnknownToken) {
		t.Fatalf("want auth.ErrUnknownToken, got %v", err)
	}
	expectMet(t, mock)
}

func TestResolveStoreError(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	mock.ExpectQuery(`SELECT id, email\s+FROM users\s+WHERE token =`).
		WithArgs("tok").
		WillReturnError(errors.New("db down"))

	_, err := server.Resolve(context.Background(), "tok")
	if err == nil || errors.Is(err, auth.ErrUnknownToken) {
		t.Fatalf("want store error passthrough, got %v", err)
	}
	expectMet(t, mock)
}
