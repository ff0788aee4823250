// Package app provides user persistence for registration and login.
package app

import (
	"context"
	"fmt"

	"github.com/990663236/veritext/app/models"
)

func (s *Server) insertUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	user := models.User{Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`, email, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Server) getUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash
		FROM users
		WHERE email = $1;
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Server) getUserByToken(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email
		FROM users
		WHERE token = $1;
	`, token).Scan(&user.ID, &user.Email)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// setUserToken overwrites the stored session token, which invalidates any
// previously issued one.
func (s *Server) setUserToken(ctx context.Context, userID int64, token string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET token = $1
		WHERE id = $2;
	`, token, userID)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	return nil
}
