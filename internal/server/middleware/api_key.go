package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lancedalanon/medicine-ocr-api/internal/server/response"
)

// HeaderAPIKey is the header carrying the caller credential.
const HeaderAPIKey = "X-API-KEY"

// WithAPIKey enforces the X-API-KEY header when key is non-empty.
// Comparison is an exact string match against the configured secret.
// Returns a Gin middleware function.
func WithAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// If no API key is configured, skip validation
		if key == "" {
			c.Next()
			return
		}

		if c.GetHeader(HeaderAPIKey) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized())
			return
		}

		c.Next()
	}
}
