package polls

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrValidation covers malformed input: empty title, fewer than two
	// usable options, out-of-range option index. Wrapped with detail.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the referenced poll does not exist.
	ErrNotFound = errors.New("poll not found")

	// ErrPollClosed means the poll is closed or past its expiry at the
	// time of the vote.
	ErrPollClosed = errors.New("poll is closed")

	// ErrAlreadyVoted means a vote for (poll, user) already exists,
	// whether caught by the pre-check or by the store's unique constraint.
	ErrAlreadyVoted = errors.New("already voted")
)

// isUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver: code 23505 for PostgreSQL, the well-known message
// prefix for SQLite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
