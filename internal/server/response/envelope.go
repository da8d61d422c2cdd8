package response

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/lancedalanon/medicine-ocr-api/internal/ocr"
	"github.com/lancedalanon/medicine-ocr-api/internal/server/service"
)

// Envelope is the only response shape the API produces. Data carries the
// extracted text on success, an error detail string on processing failures,
// and null otherwise.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Ping is the health check envelope.
func Ping() Envelope {
	return Envelope{Message: "Server is up!"}
}

// Success wraps extracted text.
func Success(text string) Envelope {
	return Envelope{Message: "Image processed successfully!", Data: text}
}

// Unauthorized is the envelope for failed credential checks.
func Unauthorized() Envelope {
	return Envelope{Message: "Unauthorized."}
}

// Internal is the envelope for faults caught at the outermost boundary.
func Internal() Envelope {
	return Envelope{Message: "Error processing the image."}
}

// FromError maps a pipeline error to its HTTP status and envelope. The
// mapping is total: unrecognized errors become a generic processing failure.
func FromError(err error) (int, Envelope) {
	switch {
	case errors.Is(err, service.ErrMissingFile):
		return http.StatusBadRequest, Envelope{Message: "No image file provided."}
	case errors.Is(err, service.ErrEmptyFile):
		return http.StatusBadRequest, Envelope{Message: "No image selected for uploading."}
	case errors.Is(err, service.ErrUnsupportedFormat):
		return http.StatusBadRequest, Envelope{Message: "Invalid file format. Allowed types are: png, jpg, jpeg."}
	case errors.Is(err, service.ErrImageDecode):
		return http.StatusInternalServerError, Envelope{Message: "Error opening or processing image.", Data: err.Error()}
	case errors.Is(err, ocr.ErrTimeout):
		return http.StatusGatewayTimeout, Envelope{Message: "Error processing the image.", Data: err.Error()}
	default:
		return http.StatusInternalServerError, Envelope{Message: "Error processing the image.", Data: err.Error()}
	}
}
