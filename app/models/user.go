// Package models defines the persisted entities and HTTP DTOs.
package models

import "time"

// User is a registered account. The session token lives only in the
// users table; each successful login overwrites it, invalidating the
// old one.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
