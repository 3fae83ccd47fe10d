package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/typni/polls-api/cliparse"
	"github.com/typni/polls-api/middleware"
	"github.com/typni/polls-api/models"
	"github.com/typni/polls-api/polls"
)

type ResultsHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *polls.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetPoll handles GET /polls/{id}
// Returns the poll, live tally, and the caller's own vote if present. The
// frontend uses user_vote to decide between voting controls and results.
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	userID := middleware.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	tally, err := h.svc.GetWithTally(r.Context(), pollID, userID)
	if err != nil {
		if errors.Is(err, polls.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		slog.Error("failed to load poll tally", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollTallyResponse{
		Poll:        tally.Poll,
		Counts:      tally.Counts,
		Percentages: tally.Percentages,
		TotalVotes:  tally.TotalVotes,
		UserVote:    tally.UserVote,
	})
}

// ListActivePolls handles GET /polls
// Returns active, non-expired polls, newest first.
func (h *ResultsHandler) ListActivePolls(w http.ResponseWriter, r *http.Request) {
	active, err := h.svc.ListActive(r.Context())
	if err != nil {
		slog.Error("failed to list active polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := make([]models.ActivePollSummary, 0, len(active))
	for _, poll := range active {
		summary := models.ActivePollSummary{Poll: poll}
		if poll.ExpiresAt != nil {
			summary.ExpiresIn = humanize.Time(*poll.ExpiresAt)
		}
		summaries = append(summaries, summary)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListActivePollsResponse{
		Polls: summaries,
	})
}
