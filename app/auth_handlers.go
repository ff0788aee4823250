// Package app provides the public health endpoint and the auth flow:
// registration, login, and token verification.
package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/990663236/veritext/app/models"
	"github.com/990663236/veritext/auth"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Health is the public health check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": "Veritext API",
	})
}

// Register creates a new account and returns its public identity. The
// password hash and token never leave the server.
func (s *Server) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validationError("invalid request body"))
		return
	}

	email := normalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" {
		writeError(c, validationError("email must not be empty"))
		return
	}
	if len(password) < minPasswordLen {
		writeError(c, validationError("password must be at least 6 characters"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, internalError("hash password", err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := s.insertUser(ctx, email, string(hash))
	if err != nil {
		var pqErr *pq.Error
		// 23505 = unique_violation on the email index
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			writeError(c, conflictError("email already registered"))
			return
		}
		writeError(c, internalError("insert user", err))
		return
	}

	c.JSON(http.StatusCreated, models.UserResponse{ID: user.ID, Email: user.Email})
}

// Login verifies credentials and issues a fresh session token. The error
// never reveals whether the email exists.
func (s *Server) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validationError("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := s.getUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(c, authError("invalid credentials"))
			return
		}
		writeError(c, internalError("load user", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(c, authError("invalid credentials"))
		return
	}

	token, err := auth.NewToken()
	if err != nil {
		writeError(c, internalError("issue token", err))
		return
	}
	if err := s.setUserToken(ctx, user.ID, token); err != nil {
		writeError(c, internalError("persist token", err))
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Verify resolves the presented token to its identity.
func (s *Server) Verify(c *gin.Context) {
	token := auth.ExtractToken(c.GetHeader("Authorization"))
	if token == "" {
		writeError(c, authError("missing token"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	identity, err := s.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownToken) {
			writeError(c, authError("invalid token"))
			return
		}
		writeError(c, internalError("resolve token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"email": identity.Email,
		"id":    identity.ID,
	})
}
