package sink

import (
	"context"

	"github.com/hazyhaar/skelwatch/internal/store"
	"github.com/hazyhaar/skelwatch/skeleton"
)

// SQLite persists captures into the history store.
type SQLite struct {
	store *store.Store
}

// NewSQLite creates a sink writing to the history database at path.
func NewSQLite(path string) (*SQLite, error) {
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return &SQLite{store: s}, nil
}

// NewSQLiteStore wraps an already open history store.
func NewSQLiteStore(s *store.Store) *SQLite {
	return &SQLite{store: s}
}

func (s *SQLite) Send(ctx context.Context, c skeleton.Capture) error {
	return s.store.Insert(ctx, c)
}

func (s *SQLite) Close() error {
	return s.store.Close()
}
