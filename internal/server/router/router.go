package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lancedalanon/medicine-ocr-api/internal/server/middleware"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/response"
)

// ProcessHandler defines the interface for the image processing handler.
type ProcessHandler interface {
	HandleProcessImage(c *gin.Context)
}

// New wires up handlers to the Gin engine.
func New(apiKey string, h ProcessHandler) *gin.Engine {
	r := gin.New()

	// A panic anywhere below must still answer with the envelope.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("request panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Internal())
	}))

	// Health check endpoint (no auth, no side effects)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Ping())
	})

	r.POST("/process-image", middleware.WithAPIKey(apiKey), h.HandleProcessImage)

	return r
}
