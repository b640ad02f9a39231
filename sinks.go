package skelwatch

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hazyhaar/skelwatch/internal/sink"
)

// Sink is the output interface for skelwatch captures.
type Sink = sink.Sink

// CaptureFunc is called for each capture by a callback sink.
type CaptureFunc = sink.CaptureFunc

// NewStdoutSink creates a stdout JSON-lines sink.
func NewStdoutSink(w io.Writer) Sink {
	return sink.NewStdout(w)
}

// NewWebhookSink creates a webhook POST sink with retry.
func NewWebhookSink(url string, logger *slog.Logger) Sink {
	return sink.NewWebhook(url, sink.WithWebhookLogger(logger))
}

// NewSQLiteSink creates a sink persisting captures into the history database.
func NewSQLiteSink(path string) (Sink, error) {
	return sink.NewSQLite(path)
}

// NewCallbackSink creates an in-process callback sink.
func NewCallbackSink(fn CaptureFunc) Sink {
	return sink.NewCallback(fn)
}

// SinksFromConfig instantiates the sinks a config file names. The history
// path, when set, is added as an implicit sqlite sink.
func SinksFromConfig(cfg *Config, logger *slog.Logger) ([]Sink, error) {
	var sinks []Sink
	for _, sc := range cfg.Sinks {
		switch sc.Type {
		case "stdout":
			sinks = append(sinks, NewStdoutSink(nil))
		case "webhook":
			sinks = append(sinks, NewWebhookSink(sc.URL, logger))
		case "sqlite":
			s, err := NewSQLiteSink(sc.Path)
			if err != nil {
				return nil, fmt.Errorf("skelwatch: sqlite sink: %w", err)
			}
			sinks = append(sinks, s)
		default:
			return nil, fmt.Errorf("skelwatch: unknown sink type %q", sc.Type)
		}
	}
	if cfg.History.Path != "" {
		s, err := NewSQLiteSink(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("skelwatch: history store: %w", err)
		}
		sinks = append(sinks, s)
	}
	return sinks, nil
}
