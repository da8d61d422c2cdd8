package ocr

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrTimeout is returned when an OCR job does not finish within the pool's
// per-job deadline.
var ErrTimeout = errors.New("ocr timed out")

// Pool bounds the number of concurrent OCR invocations to a fixed capacity.
// Submitters block until a slot frees; waiting submitters are granted slots
// in no particular order. Capacity never changes after construction.
type Pool struct {
	engine  Engine
	slots   chan struct{}
	timeout time.Duration
}

// NewPool builds a pool of the given capacity around engine. timeout bounds
// each job; zero disables the deadline.
func NewPool(engine Engine, capacity int, timeout time.Duration) *Pool {
	if capacity <= 0 {
		capacity = 1
	}
	return &Pool{
		engine:  engine,
		slots:   make(chan struct{}, capacity),
		timeout: timeout,
	}
}

// Capacity returns the number of slots.
func (p *Pool) Capacity() int {
	return cap(p.slots)
}

type jobResult struct {
	text string
	err  error
}

// Submit blocks until a slot is free, runs the engine on img and returns
// its text. Engine panics are converted to errors. On timeout the caller
// gets ErrTimeout immediately; the slot itself is freed only when the
// engine call actually returns, so capacity is never oversubscribed by
// abandoned jobs.
func (p *Pool) Submit(ctx context.Context, img image.Image) (string, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "waiting for ocr slot")
	}

	jobCtx := ctx
	cancel := func() {}
	if p.timeout > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, p.timeout)
	}
	defer cancel()

	done := make(chan jobResult, 1)
	go func() {
		defer func() { <-p.slots }()
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("ocr job panicked")
				done <- jobResult{err: errors.Errorf("ocr panic: %v", r)}
			}
		}()
		text, err := p.engine.ExtractText(jobCtx, img)
		done <- jobResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-jobCtx.Done():
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "ocr canceled")
		}
		return "", errors.Wrapf(ErrTimeout, "after %s", p.timeout)
	}
}
