package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/990663236/veritext/app/models"
	"github.com/990663236/veritext/auth"
	"github.com/990663236/veritext/classifier"

	"github.com/gin-gonic/gin"
)

// AnalyzeText scores a text and records the result, tied to the caller
// when a resolvable token accompanies the request.
func (s *Server) AnalyzeText(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validationError("invalid request body"))
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(c, validationError("text must not be empty"))
		return
	}
	if !classifier.Legible(text) {
		writeError(c, validationError("file appears to contain only images or too little legible text"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	// The token is optional here; an absent or unknown one just means the
	// record is stored without an owner.
	var userID *int64
	if token := auth.ExtractToken(c.GetHeader("Authorization")); token != "" {
		identity, err := s.Resolve(ctx, token)
		switch {
		case err == nil:
			userID = &identity.ID
		case errors.Is(err, auth.ErrUnknownToken):
			// anonymous
		default:
			writeError(c, internalError("resolve token", err))
			return
		}
	}

	score, topWords := s.clf.Score(text)
	if topWords == nil {
		topWords = []string{}
	}

	if _, err := s.insertAnalysis(ctx, userID, text, score, topWords); err != nil {
		writeError(c, internalError("persist analysis", err))
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Score:    score,
		Buckets:  models.Buckets{Human: 1 - score, AI: score},
		TopWords: topWords,
	})
}
