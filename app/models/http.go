package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Buckets splits the probability mass between the two classes.
type Buckets struct {
	Human float64 `json:"human"`
	AI    float64 `json:"ai"`
}

type AnalyzeResponse struct {
	Score    float64  `json:"score"`
	Buckets  Buckets  `json:"buckets"`
	TopWords []string `json:"topWords"`
}

type HistoryItem struct {
	ID        int64     `json:"id"`
	Score     float64   `json:"score"`
	TopWords  []string  `json:"topWords"`
	CreatedAt time.Time `json:"createdAt"`
}
