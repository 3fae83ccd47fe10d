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

// PollHandler serves the back-office poll lifecycle endpoints. All of them
// sit behind the admin token middleware.
type PollHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewPollHandler(svc *polls.Service, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A past expires_at is accepted: the poll is created already closed for
	// voting, same as expiring later would leave it.
	poll, err := h.svc.Create(r.Context(), polls.CreatePollInput{
		Title:       req.Title,
		Description: req.Description,
		Options:     req.Options,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, polls.ErrValidation) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "title", poll.Title)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ClosePoll handles POST /polls/{id}/close
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusClosed)
}

// ReopenPoll handles POST /polls/{id}/reopen
func (h *PollHandler) ReopenPoll(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusActive)
}

func (h *PollHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var err error
	if status == models.StatusClosed {
		err = h.svc.Close(r.Context(), pollID)
	} else {
		err = h.svc.Reopen(r.Context(), pollID)
	}

	if err != nil {
		if errors.Is(err, polls.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		slog.Error("failed to update poll status", "error", err, "poll_id", pollID, "status", status)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}

	slog.Info("poll status updated", "poll_id", pollID, "status", status)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"poll_id": pollID,
		"status":  status,
	})
}
