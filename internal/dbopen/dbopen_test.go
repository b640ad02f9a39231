package dbopen

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"
)

func TestOpenMemory_AppliesSchema(t *testing.T) {
	db := OpenMemory(t, WithSchema(`CREATE TABLE t (id TEXT PRIMARY KEY)`))

	if _, err := db.Exec(`INSERT INTO t (id) VALUES ('a')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT count(*) FROM t`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows: got %d, want 1", n)
	}
}

func TestExec_PassesThrough(t *testing.T) {
	db := OpenMemory(t, WithSchema(`CREATE TABLE t (id TEXT PRIMARY KEY)`))

	if _, err := Exec(context.Background(), db, `INSERT INTO t (id) VALUES (?)`, "x"); err != nil {
		t.Fatalf("exec: %v", err)
	}
	if _, err := Exec(context.Background(), db, `INSERT INTO t (id) VALUES (?)`, "x"); err == nil {
		t.Error("duplicate insert should fail, not retry forever")
	}
}

func TestIsBusy(t *testing.T) {
	if IsBusy(nil) {
		t.Error("nil is not busy")
	}
}
