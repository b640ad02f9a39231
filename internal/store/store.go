// Package store provides the SQLite persistence layer for capture history.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazyhaar/skelwatch/internal/dbopen"
	"github.com/hazyhaar/skelwatch/skeleton"
)

// Store is the capture history database handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the history database at path, applies pragmas and
// the schema.
func Open(path string, opts ...dbopen.Option) (*Store, error) {
	allOpts := append([]dbopen.Option{
		dbopen.WithMkdirAll(),
		dbopen.WithSchema(Schema),
	}, opts...)

	db, err := dbopen.Open(path, allOpts...)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Insert records one capture.
func (s *Store) Insert(ctx context.Context, c skeleton.Capture) error {
	_, err := dbopen.Exec(ctx, s.DB, `
		INSERT INTO captures (id, page_url, tag, markup, markup_hash, created_at)
		VALUES (?,?,?,?,?,?)`,
		c.ID, c.PageURL, c.Tag, c.Markup, c.MarkupHash, c.Timestamp)
	if err != nil {
		return fmt.Errorf("store: insert capture: %w", err)
	}
	return nil
}

// Recent returns the n most recent captures, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]skeleton.Capture, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, page_url, tag, markup, markup_hash, created_at
		FROM captures ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("store: query recent: %w", err)
	}
	defer rows.Close()

	var out []skeleton.Capture
	for rows.Next() {
		var c skeleton.Capture
		if err := rows.Scan(&c.ID, &c.PageURL, &c.Tag, &c.Markup, &c.MarkupHash, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("store: scan capture: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
