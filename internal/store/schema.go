package store

// Schema contains the DDL for the capture history tables.
const Schema = `
-- Captures: one row per skeleton copied from a page
CREATE TABLE IF NOT EXISTS captures (
    id          TEXT PRIMARY KEY,
    page_url    TEXT NOT NULL,
    tag         TEXT NOT NULL DEFAULT '',
    markup      TEXT NOT NULL,
    markup_hash TEXT NOT NULL,
    created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_captures_url ON captures(page_url);
CREATE INDEX IF NOT EXISTS idx_captures_created ON captures(created_at DESC);
`
