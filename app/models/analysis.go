package models

import "time"

// Analysis is one scoring request, immutable once written. UserID is nil
// for anonymous requests; those records never show up in any history.
type Analysis struct {
	ID        int64
	UserID    *int64
	Text      string
	Score     float64
	TopWords  []string
	CreatedAt time.Time
}
