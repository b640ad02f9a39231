package sink

import (
	"context"

	"github.com/hazyhaar/skelwatch/skeleton"
)

// CaptureFunc is called for each capture.
type CaptureFunc func(ctx context.Context, c skeleton.Capture) error

// Callback is an in-process sink with zero serialisation, for embedding
// skelwatch into another program.
type Callback struct {
	fn CaptureFunc
}

// NewCallback creates a callback sink.
func NewCallback(fn CaptureFunc) *Callback {
	return &Callback{fn: fn}
}

func (c *Callback) Send(ctx context.Context, rec skeleton.Capture) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(ctx, rec)
}

func (c *Callback) Close() error { return nil }
