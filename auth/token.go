// Package auth handles opaque session tokens and provides Gin middleware
// for enforcing bearer token auth.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const tokenBytes = 32

// ExtractToken pulls the token out of an Authorization header value.
// Accepts "Bearer <token>" and "Token <token>" (scheme case-insensitive)
// as well as a bare token. Malformed headers degrade to treating the whole
// value as the token; an absent header yields "".
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) == 2 && (strings.EqualFold(parts[0], "bearer") || strings.EqualFold(parts[0], "token")) {
		return parts[1]
	}
	return header
}

// NewToken returns a hex-encoded 256-bit random session token.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
