package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lancedalanon/medicine-ocr-api/internal/config"
	"github.com/lancedalanon/medicine-ocr-api/internal/ocr"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/handler"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/router"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/service"
)

// Run loads configuration, wires the pipeline and starts the HTTP server.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Build dependency chain
	engine := ocr.NewTesseract(cfg.OCRLanguage)
	pool := ocr.NewPool(engine, cfg.Workers, cfg.OCRTimeout)
	svc := service.New(pool)
	h := handler.NewProcessHandler(svc, cfg.MaxUploadBytes)

	r := router.New(cfg.APIKey, h)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{
		"addr":     addr,
		"workers":  pool.Capacity(),
		"language": cfg.OCRLanguage,
		"timeout":  cfg.OCRTimeout,
	}).Info("listening")
	return r.Run(addr)
}
