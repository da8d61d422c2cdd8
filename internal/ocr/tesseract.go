package ocr

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"
)

// Tesseract runs OCR through the gosseract binding. A fresh client is
// created per call; gosseract clients are not safe for concurrent use.
type Tesseract struct {
	Language string
}

// NewTesseract returns an engine for the given Tesseract language code,
// defaulting to English.
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{Language: language}
}

// ExtractText recognizes text in img, preserving the visual layout: word
// boxes are regrouped into lines top-to-bottom, left-to-right. Returns
// ErrNoText when nothing is recognized.
func (t *Tesseract) ExtractText(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "encode image for ocr")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Language); err != nil {
		return "", errors.Wrap(err, "set ocr language")
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", errors.Wrap(err, "set ocr image")
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Word boxes can fail on some tesseract builds; fall back to the
		// plain text output without layout reconstruction.
		text, terr := client.Text()
		if terr != nil {
			return "", errors.Wrap(terr, "ocr")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return "", ErrNoText
		}
		return text, nil
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words = append(words, Word{
			X:    box.Box.Min.X,
			Y:    box.Box.Min.Y,
			Text: box.Word,
		})
	}
	if len(words) == 0 {
		return "", ErrNoText
	}

	return FormatLines(words, lineTolerance), nil
}
