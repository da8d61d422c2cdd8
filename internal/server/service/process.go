package service

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Extractor is the bounded OCR capability consumed by the service.
type Extractor interface {
	Submit(ctx context.Context, img image.Image) (string, error)
}

// ErrImageDecode marks uploads that passed validation but could not be
// decoded as an image.
var ErrImageDecode = errors.New("cannot decode image")

// Service coordinates one upload through validation, decoding and OCR.
// It holds no per-request state; everything lives on the call stack.
type Service struct {
	pool Extractor
}

// New creates the Service.
func New(pool Extractor) *Service {
	return &Service{pool: pool}
}

// Process validates the upload, decodes it and extracts its text. Every
// failure is one of the typed pipeline errors; the OCR capability is never
// touched for rejected uploads.
func (s *Service) Process(ctx context.Context, filename string, data []byte) (string, error) {
	if err := Validate(filename, data); err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrapf(ErrImageDecode, "%s: %v", filename, err)
	}

	return s.pool.Submit(ctx, img)
}
