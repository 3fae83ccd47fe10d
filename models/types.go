package models

import "time"

// Poll status constants
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Request types

type CreatePollRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// SelectedOption is a pointer so that a missing field is rejected instead
// of silently voting for option 0.
type CastVoteRequest struct {
	SelectedOption *int `json:"selected_option"`
}

// Response types

type CastVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type PollTallyResponse struct {
	Poll        Poll  `json:"poll"`
	Counts      []int `json:"counts"`
	Percentages []int `json:"percentages"`
	TotalVotes  int   `json:"total_votes"`
	UserVote    *int  `json:"user_vote,omitempty"`
}

type ActivePollSummary struct {
	Poll      Poll   `json:"poll"`
	ExpiresIn string `json:"expires_in,omitempty"`
}

type ListActivePollsResponse struct {
	Polls []ActivePollSummary `json:"polls"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Poll struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Options     []string   `json:"options"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type Vote struct {
	ID             string    `json:"id"`
	PollID         string    `json:"poll_id"`
	UserID         string    `json:"-"` // Never expose in JSON
	SelectedOption int       `json:"selected_option"`
	CreatedAt      time.Time `json:"created_at"`
}

// PollWithTally is the service-level read model for a single poll: the poll,
// per-option counts and percentages (indexed like Options), and the caller's
// own vote if they have one.
type PollWithTally struct {
	Poll        Poll
	Counts      []int
	Percentages []int
	TotalVotes  int
	UserVote    *int
}
