package polls

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/typni/polls-api/models"
)

// Service implements the poll lifecycle and vote casting/tallying against a
// relational store. All state lives in the store; Service itself holds no
// mutable state and is safe for concurrent use.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

type CreatePollInput struct {
	Title       string
	Description string
	Options     []string
	ExpiresAt   *time.Time
}

// Create validates the input, persists a new active poll, and returns it.
// The title is trimmed; options are trimmed and blanks dropped. At least two
// options must survive filtering.
func (s *Service) Create(ctx context.Context, in CreatePollInput) (*models.Poll, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	options := make([]string, 0, len(in.Options))
	for _, opt := range in.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: at least 2 non-empty options are required", ErrValidation)
	}

	poll := &models.Poll{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Options:     options,
		Status:      models.StatusActive,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   in.ExpiresAt,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, title, description, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.Title, poll.Description, poll.Status, poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("insert poll: %w", err)
	}

	for idx, label := range options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_option (poll_id, idx, label)
			VALUES ($1, $2, $3)
		`, poll.ID, idx, label)
		if err != nil {
			return nil, fmt.Errorf("insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit poll: %w", err)
	}

	return poll, nil
}

// Close marks the poll closed. Closing an already-closed poll is a no-op
// success. Returns ErrNotFound for unknown polls.
func (s *Service) Close(ctx context.Context, pollID string) error {
	return s.setStatus(ctx, pollID, models.StatusClosed)
}

// Reopen marks the poll active again. Idempotent like Close. Reopening does
// not clear expires_at: an expired poll stays closed for voting until its
// expiry is in the future.
func (s *Service) Reopen(ctx context.Context, pollID string) error {
	return s.setStatus(ctx, pollID, models.StatusActive)
}

func (s *Service) setStatus(ctx context.Context, pollID, status string) error {
	var current string
	err := s.db.QueryRowContext(ctx, `SELECT status FROM poll WHERE id = $1`, pollID).Scan(&current)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query poll status: %w", err)
	}

	if current == status {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `UPDATE poll SET status = $1 WHERE id = $2`, status, pollID)
	if err != nil {
		return fmt.Errorf("update poll status: %w", err)
	}
	return nil
}

// CastVote records userID's vote on pollID. Preconditions are checked in
// order: poll exists, poll is effectively active, option index is in range,
// user has not voted. The pre-check for an existing vote is an early exit
// only; the store's UNIQUE (poll_id, user_id) constraint is the
// authoritative guard, and a constraint violation at insert time surfaces as
// ErrAlreadyVoted.
func (s *Service) CastVote(ctx context.Context, pollID, userID string, selectedOption int) (*models.Vote, error) {
	poll, err := s.getPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if effectiveClosed(poll, time.Now()) {
		return nil, ErrPollClosed
	}

	if selectedOption < 0 || selectedOption >= len(poll.Options) {
		return nil, fmt.Errorf("%w: selected_option %d out of range [0, %d)",
			ErrValidation, selectedOption, len(poll.Options))
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2)
	`, pollID, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("query existing vote: %w", err)
	}
	if exists {
		return nil, ErrAlreadyVoted
	}

	vote := &models.Vote{
		ID:             uuid.NewString(),
		PollID:         pollID,
		UserID:         userID,
		SelectedOption: selectedOption,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vote (id, poll_id, user_id, selected_option, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.UserID, vote.SelectedOption, vote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("insert vote: %w", err)
	}

	return vote, nil
}

// GetWithTally returns the poll, its per-option vote counts and percentages,
// and userID's own vote if present. Counts are recomputed from the vote
// table on every read; nothing is cached.
func (s *Service) GetWithTally(ctx context.Context, pollID, userID string) (*models.PollWithTally, error) {
	poll, err := s.getPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(poll.Options))
	total := 0

	rows, err := s.db.QueryContext(ctx, `
		SELECT selected_option, COUNT(*)
		FROM vote
		WHERE poll_id = $1
		GROUP BY selected_option
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("query tally: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx, count int
		if err := rows.Scan(&idx, &count); err != nil {
			return nil, fmt.Errorf("scan tally row: %w", err)
		}
		if idx >= 0 && idx < len(counts) {
			counts[idx] = count
		}
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tally rows: %w", err)
	}

	var userVote *int
	var selected int
	err = s.db.QueryRowContext(ctx, `
		SELECT selected_option FROM vote WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&selected)
	if err == nil {
		userVote = &selected
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("query user vote: %w", err)
	}

	return &models.PollWithTally{
		Poll:        *poll,
		Counts:      counts,
		Percentages: Percentages(counts, total),
		TotalVotes:  total,
		UserVote:    userVote,
	}, nil
}

// ListActive returns polls whose effective status is active (status field
// active and not expired), newest first.
func (s *Service) ListActive(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, expires_at
		FROM poll
		WHERE status = $1
		ORDER BY created_at DESC
	`, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("query active polls: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan poll row: %w", err)
		}
		if effectiveClosed(&p, now) {
			continue
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate poll rows: %w", err)
	}

	for i := range polls {
		options, err := s.loadOptions(ctx, polls[i].ID)
		if err != nil {
			return nil, err
		}
		polls[i].Options = options
	}

	return polls, nil
}

func (s *Service) getPoll(ctx context.Context, pollID string) (*models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, created_at, expires_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query poll: %w", err)
	}

	p.Options, err = s.loadOptions(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) loadOptions(ctx context.Context, pollID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label FROM poll_option WHERE poll_id = $1 ORDER BY idx
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	options := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan option row: %w", err)
		}
		options = append(options, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate option rows: %w", err)
	}
	return options, nil
}

// effectiveClosed reports whether the poll is closed for voting: either
// explicitly closed or past its expiry. Expiry is evaluated at read/vote
// time; the stored status is not flipped by a background job.
func effectiveClosed(p *models.Poll, now time.Time) bool {
	if p.Status == models.StatusClosed {
		return true
	}
	return p.ExpiresAt != nil && !p.ExpiresAt.After(now)
}
