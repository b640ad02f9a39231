package store

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/skelwatch/internal/dbopen"
	"github.com/hazyhaar/skelwatch/skeleton"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	return &Store{DB: db}
}

func TestInsertAndRecent(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	for i, c := range []skeleton.Capture{
		{ID: "a", PageURL: "https://example.com", Tag: "div", Markup: "<div></div>", MarkupHash: "h1", Timestamp: 100},
		{ID: "b", PageURL: "https://example.com", Tag: "p", Markup: "<div></div>", MarkupHash: "h2", Timestamp: 200},
		{ID: "c", PageURL: "https://other.test", Tag: "span", Markup: "<div></div>", MarkupHash: "h3", Timestamp: 300},
	} {
		if err := s.Insert(ctx, c); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent: got %d captures, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("recent order: got %s,%s, want c,b", got[0].ID, got[1].ID)
	}
	if got[0].Tag != "span" {
		t.Errorf("tag roundtrip: got %q, want %q", got[0].Tag, "span")
	}
}

func TestRecentEmpty(t *testing.T) {
	s := openTest(t)
	got, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("recent on empty store: got %d captures, want 0", len(got))
	}
}
