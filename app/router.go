// Package app wires the HTTP routes for the Veritext API.
package app

import (
	"regexp"
	"time"

	"github.com/990663236/veritext/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dev clients come from localhost or a LAN address on some port.
var localOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1|0\.0\.0\.0|192\.168\.\d+\.\d+):\d+$`)

// NewRouter builds the HTTP router. Auth endpoints and text analysis are
// public; analysis resolves an optional token itself, history requires one.
func (s *Server) NewRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return localOrigin.MatchString(origin) },
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", Health)
	router.POST("/auth/register", s.Register)
	router.POST("/auth/login", s.Login)
	router.GET("/auth/verify", s.Verify)
	router.POST("/analyze/text", s.AnalyzeText)

	protected := router.Group("/")
	protected.Use(auth.Middleware(s))
	protected.GET("/history", s.History)

	return router
}
