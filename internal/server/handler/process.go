package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lancedalanon/medicine-ocr-api/internal/server/response"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/service"
)

// Pipeline defines the behavior consumed by the handler.
type Pipeline interface {
	Process(ctx context.Context, filename string, data []byte) (string, error)
}

// ProcessHandler manages image extraction HTTP interactions.
type ProcessHandler struct {
	service  Pipeline
	maxBytes int64
}

// NewProcessHandler builds the handler. maxBytes caps the in-memory
// multipart form size.
func NewProcessHandler(svc Pipeline, maxBytes int64) *ProcessHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ProcessHandler{service: svc, maxBytes: maxBytes}
}

// HandleProcessImage reads the multipart "image" field and runs it through
// the extraction pipeline.
func (h *ProcessHandler) HandleProcessImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.maxBytes); err != nil {
		status, env := response.FromError(service.ErrMissingFile)
		c.AbortWithStatusJSON(status, env)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		status, env := response.FromError(service.ErrMissingFile)
		c.AbortWithStatusJSON(status, env)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		status, env := response.FromError(errors.Wrap(err, "read upload"))
		c.AbortWithStatusJSON(status, env)
		return
	}

	text, err := h.service.Process(c.Request.Context(), header.Filename, data)
	if err != nil {
		logrus.WithError(err).WithField("filename", header.Filename).Warn("image processing failed")
		status, env := response.FromError(err)
		c.AbortWithStatusJSON(status, env)
		return
	}

	c.JSON(http.StatusOK, response.Success(text))
}
