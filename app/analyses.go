// Package app provides analysis record persistence and history reads.
package app

import (
	"context"
	"fmt"

	"github.com/990663236/veritext/app/models"

	"github.com/lib/pq"
)

const historyLimit = 200

func (s *Server) insertAnalysis(ctx context.Context, userID *int64, text string, score float64, topWords []string) (models.Analysis, error) {
	analysis := models.Analysis{
		UserID:   userID,
		Text:     text,
		Score:    score,
		TopWords: topWords,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO analyses (user_id, text, score, top_words)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`, userID, text, score, pq.Array(topWords)).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("insert analysis: %w", err)
	}
	return analysis, nil
}

// loadHistory reads the owner's records only, newest first, capped at 200.
func (s *Server) loadHistory(ctx context.Context, userID int64) ([]models.Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, top_words, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var out []models.Analysis
	for rows.Next() {
		a := models.Analysis{UserID: &userID}
		if err := rows.Scan(&a.ID, &a.Score, pq.Array(&a.TopWords), &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}
