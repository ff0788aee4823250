package app

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/990663236/veritext/auth"
)

// Server holds the dependencies handlers share: the database pool and the
// loaded classifier. Both are constructed once at startup and injected,
// so there is no lazily-mutated global state.
type Server struct {
	db  *sql.DB
	clf scorer
}

// scorer is what handlers need from the classifier package.
type scorer interface {
	Score(text string) (float64, []string)
	Fallback() bool
}

func NewServer(db *sql.DB, clf scorer) *Server {
	if clf.Fallback() {
		log.Print("analysis will use the fallback length scorer, not a trained model")
	}
	return &Server{db: db, clf: clf}
}

// Resolve implements auth.TokenResolver against the users table.
func (s *Server) Resolve(ctx context.Context, token string) (auth.Identity, error) {
	user, err := s.getUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Identity{}, auth.ErrUnknownToken
		}
		return auth.Identity{}, err
	}
	return auth.Identity{ID: user.ID, Email: user.Email}, nil
}
