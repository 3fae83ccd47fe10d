package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the poll service.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The SQL sticks to the portable subset understood by both PostgreSQL and
// SQLite: no NOW() defaults (timestamps are set by the application) and no
// dialect-specific types. Expiry comparisons are done in Go after scanning,
// never in SQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
    created_at TIMESTAMP NOT NULL,
    expires_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_poll_status ON poll(status);
CREATE INDEX IF NOT EXISTS idx_poll_created_at ON poll(created_at);

-- Options: fixed at creation, ordered, referenced by index
CREATE TABLE IF NOT EXISTS poll_option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL CHECK (idx >= 0),
    label TEXT NOT NULL,
    PRIMARY KEY (poll_id, idx)
);

-- Votes: the UNIQUE (poll_id, user_id) constraint is the authoritative
-- one-vote-per-user guard; application pre-checks are an early exit only.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    selected_option INTEGER NOT NULL CHECK (selected_option >= 0),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (poll_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id);
`
