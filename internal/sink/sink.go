// Package sink defines output backends for skelwatch captures.
package sink

import (
	"context"

	"github.com/hazyhaar/skelwatch/skeleton"
)

// Sink is the output interface. Implementations deliver captures to
// different backends (stdout, webhook, the SQLite history store).
type Sink interface {
	Send(ctx context.Context, c skeleton.Capture) error
	Close() error
}
