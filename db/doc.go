/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is restricted to the subset shared by PostgreSQL and SQLite so the
same schema serves production and the test suite.

# Tables

The schema includes:

  - poll: Poll metadata and lifecycle state (active/closed, optional expiry)
  - poll_option: Ordered option labels per poll, referenced by index
  - vote: One immutable vote per user per poll

# Relationships

	poll 1──* poll_option
	poll 1──* vote

All foreign keys use ON DELETE CASCADE.

# Constraints

  - vote UNIQUE (poll_id, user_id): the authoritative one-vote-per-user
    guard; concurrent duplicate casts resolve to exactly one stored vote
  - poll.status CHECK: only 'active' and 'closed' exist
  - poll_option PRIMARY KEY (poll_id, idx): option order is fixed
*/
package db
