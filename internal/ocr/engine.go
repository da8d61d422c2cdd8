package ocr

import (
	"context"
	"image"

	"github.com/pkg/errors"
)

// Engine converts pixel data into machine-readable text. Implementations
// are opaque to the rest of the pipeline; the pool only schedules them.
type Engine interface {
	ExtractText(ctx context.Context, img image.Image) (string, error)
}

// ErrNoText is returned when the engine finds no recognizable text in an
// otherwise valid image.
var ErrNoText = errors.New("no text detected in the image")
