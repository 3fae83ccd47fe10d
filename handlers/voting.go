package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/typni/polls-api/cliparse"
	"github.com/typni/polls-api/middleware"
	"github.com/typni/polls-api/models"
	"github.com/typni/polls-api/polls"
)

type VotingHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *polls.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// CastVote handles POST /polls/{id}/votes
//
// The UI disables voting controls once the caller has a recorded vote, but
// that is a convenience only. This endpoint must stay correct under
// double-clicks and duplicate retries, which the service resolves against
// the store's unique constraint. PollClosed and AlreadyVoted both map to
// 409 with distinct messages so the frontend can tell them apart.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
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

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SelectedOption == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selected_option is required")
		return
	}

	vote, err := h.svc.CastVote(r.Context(), pollID, userID, *req.SelectedOption)
	if err != nil {
		switch {
		case errors.Is(err, polls.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, polls.ErrPollClosed):
			middleware.ErrorResponse(w, http.StatusConflict, "Poll is closed for voting")
		case errors.Is(err, polls.ErrValidation):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, polls.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
		default:
			slog.Error("failed to cast vote", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		}
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:  vote.ID,
		Message: "Vote recorded",
	})
}
