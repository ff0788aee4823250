package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrUnknownToken is returned by resolvers when no user owns the token.
var ErrUnknownToken = errors.New("unknown token")

// TokenResolver resolves an opaque session token to the owning identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// Middleware enforces bearer token auth and injects the resolved identity
// into the request context.
func Middleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c.GetHeader("Authorization"))
		if token == "" {
			log.Printf("auth failure: missing token path=%s", c.Request.URL.Path)
			respondUnauthorized(c, "missing token")
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, ErrUnknownToken) {
				log.Printf("auth failure: token invalid path=%s", c.Request.URL.Path)
				respondUnauthorized(c, "invalid token")
				return
			}
			log.Printf("auth failure: resolver error path=%s err=%v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
