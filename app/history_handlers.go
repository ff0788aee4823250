package app

import (
	"context"
	"net/http"
	"time"

	"github.com/990663236/veritext/app/models"
	"github.com/990663236/veritext/auth"

	"github.com/gin-gonic/gin"
)

// History returns the caller's recent analyses, newest first.
func (s *Server) History(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		writeError(c, authError("missing auth context"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	records, err := s.loadHistory(ctx, identity.ID)
	if err != nil {
		writeError(c, internalError("load history", err))
		return
	}

	items := make([]models.HistoryItem, 0, len(records))
	for _, r := range records {
		topWords := r.TopWords
		if topWords == nil {
			topWords = []string{}
		}
		items = append(items, models.HistoryItem{
			ID:        r.ID,
			Score:     r.Score,
			TopWords:  topWords,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}
