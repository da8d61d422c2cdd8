package service

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Validation failures, one per rejection reason so responses can carry
// distinct messages.
var (
	ErrMissingFile       = errors.New("no image file provided")
	ErrEmptyFile         = errors.New("no image selected for uploading")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// allowedExtensions is the fixed set of accepted upload formats.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Validate checks the upload in order: a file was selected, the payload is
// non-empty, and the extension is an accepted format (case-insensitive).
// Pixel data is not inspected here; decoding happens later in the pipeline.
func Validate(filename string, data []byte) error {
	if filename == "" {
		return ErrEmptyFile
	}
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]; !ok {
		return ErrUnsupportedFormat
	}
	return nil
}
