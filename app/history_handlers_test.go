package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHistoryRequiresToken(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	resp := performRequest(server.NewRouter(), http.MethodGet, "/history", "", nil)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	expectMet(t, mock)
}

func TestHistoryReturnsOwnRecordsNewestFirst(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	newer := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery(`SELECT id, email\s+FROM users\s+WHERE token =`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(7, "test@x.com"))
	mock.ExpectQuery(`SELECT id, score, top_words, created_at\s+FROM analyses\s+WHERE user_id =`).
		WithArgs(int64(7), historyLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "score", "top_words", "created_at"}).
			AddRow(2, 0.8, "{hello,world}", newer).
			AddRow(1, 0.1, "{}", older))

	resp := performRequest(server.NewRouter(), http.MethodGet, "/history", "",
		map[string]string{"Authorization": "Bearer tok"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var items []struct {
		ID        int64     `json:"id"`
		Score     float64   `json:"score"`
		TopWords  []string  `json:"topWords"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected newest first, got ids %d,%d", items[0].ID, items[1].ID)
	}
	if !items[0].CreatedAt.Equal(newer) {
		t.Fatalf("unexpected createdAt: %v", items[0].CreatedAt)
	}
	if len(items[0].TopWords) != 2 || items[1].TopWords == nil {
		t.Fatalf("unexpected top words: %v / %v", items[0].TopWords, items[1].TopWords)
	}
	expectMet(t, mock)
}

func TestHistoryEmptyIsJSONArray(t *testing.T) {
	server, mock := newMockServer(t, stubScorer{})

	mock.ExpectQuery(`SELECT id, email\s+FROM users\s+WHERE token =`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(7, "test@x.com"))
	mock.ExpectQuery(`SELECT id, score, top_words, created_at\s+FROM analyses\s+WHERE user_id =`).
		WithArgs(int64(7), historyLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "score", "top_words", "created_at"}))

	resp := performRequest(server.NewRouter(), http.MethodGet, "/history", "",
		map[string]string{"Authorization": "Bearer tok"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %s", resp.Body.String())
	}
	expectMet(t, mock)
}
