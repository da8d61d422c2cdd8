package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedText = "Amoxicillin 500mg"

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Submit(ctx context.Context, img image.Image) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestProcess_Success(t *testing.T) {
	pool := &fakeExtractor{text: expectedText}
	svc := New(pool)

	text, err := svc.Process(context.Background(), "prescription.png", pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, expectedText, text)
	assert.Equal(t, 1, pool.calls)
}

func TestProcess_UppercaseExtension(t *testing.T) {
	pool := &fakeExtractor{text: expectedText}
	svc := New(pool)

	_, err := svc.Process(context.Background(), "SCAN.PNG", pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, 1, pool.calls)
}

func TestProcess_RejectsWithoutInvokingOCR(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{"empty filename", "", pngBytes(t), ErrEmptyFile},
		{"empty payload", "scan.png", nil, ErrEmptyFile},
		{"unsupported extension", "notes.txt", pngBytes(t), ErrUnsupportedFormat},
		{"no extension", "scan", pngBytes(t), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &fakeExtractor{text: expectedText}
			svc := New(pool)

			_, err := svc.Process(context.Background(), tt.filename, tt.data)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			assert.Zero(t, pool.calls, "ocr must not run for rejected uploads")
		})
	}
}

func TestProcess_UndecodableUpload(t *testing.T) {
	pool := &fakeExtractor{text: expectedText}
	svc := New(pool)

	_, err := svc.Process(context.Background(), "broken.png", []byte("not an image"))
	assert.True(t, errors.Is(err, ErrImageDecode), "expected ErrImageDecode, got %v", err)
	assert.Zero(t, pool.calls)
}

func TestProcess_PropagatesExtractorError(t *testing.T) {
	wantErr := errors.New("ocr failed")
	pool := &fakeExtractor{err: wantErr}
	svc := New(pool)

	_, err := svc.Process(context.Background(), "scan.jpg", pngBytes(t))
	assert.True(t, errors.Is(err, wantErr))
}

func TestValidate_AcceptedExtensions(t *testing.T) {
	for _, name := range []string{"a.png", "a.jpg", "a.jpeg", "a.JPEG", "a.Png"} {
		assert.NoError(t, Validate(name, []byte{1}), name)
	}
}
