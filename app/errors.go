// Package app classifies request failures and maps them onto HTTP responses.
package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a request failure for status mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindAuth
	KindInternal
)

// Error carries a failure kind plus a client-safe message. Err is kept for
// logging only and is never serialized to the client.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

func conflictError(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

func authError(msg string) *Error { return &Error{Kind: KindAuth, Msg: msg} }

func internalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

func statusFor(k Kind) int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps an error onto an HTTP response. Internal failures are
// logged and replaced with a generic message.
func writeError(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = internalError("unexpected error", err)
	}
	if appErr.Kind == KindInternal {
		log.Printf("internal error: %s path=%s err=%v", appErr.Msg, c.Request.URL.Path, appErr.Err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.AbortWithStatusJSON(statusFor(appErr.Kind), gin.H{"error": appErr.Msg})
}
