package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/typni/polls-api/models"
	"github.com/typni/polls-api/polls"
	"github.com/typni/polls-api/testutil"
)

func TestCreatePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:       "Favorite color?",
		Description: "Pick one",
		Options:     []string{"Red", "Blue"},
	}, nil)
	w := httptest.NewRecorder()
	h.CreatePoll(w, req)

	testutil.AssertStatus(t, w, 201)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	if poll.ID == "" || poll.Status != models.StatusActive {
		t.Errorf("unexpected poll: %+v", poll)
	}
	if len(poll.Options) != 2 {
		t.Errorf("expected 2 options, got %v", poll.Options)
	}
}

func TestCreatePoll_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	tests := []struct {
		name string
		req  models.CreatePollRequest
	}{
		{"empty title", models.CreatePollRequest{Title: "", Options: []string{"A", "B"}}},
		{"blank options", models.CreatePollRequest{Title: "X", Options: []string{"  ", ""}}},
		{"one option", models.CreatePollRequest{Title: "X", Options: []string{"A"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls", tt.req, nil)
			w := httptest.NewRecorder()
			h.CreatePoll(w, req)

			testutil.AssertStatus(t, w, 400)
		})
	}
}

func TestCreatePoll_PastExpiry(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	svc := polls.NewService(conn)
	h := NewPollHandler(svc, cfg)

	// Creating with an expiry already in the past is not a validation error;
	// the poll simply starts out closed for voting.
	past := time.Now().Add(-time.Hour).UTC()
	req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:     "Last week's question",
		Options:   []string{"A", "B"},
		ExpiresAt: &past,
	}, nil)
	w := httptest.NewRecorder()
	h.CreatePoll(w, req)

	testutil.AssertStatus(t, w, 201)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	if poll.ExpiresAt == nil {
		t.Fatal("expected expires_at on the created poll")
	}

	if _, err := svc.CastVote(req.Context(), poll.ID, "user-a", 0); !errors.Is(err, polls.ErrPollClosed) {
		t.Errorf("expected ErrPollClosed for the expired poll, got %v", err)
	}
}

func TestCreatePoll_InvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	req := httptest.NewRequest("POST", "/polls", nil)
	w := httptest.NewRecorder()
	h.CreatePoll(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestClosePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	pollID := testutil.CreateTestPoll(t, conn, models.StatusActive, []string{"A", "B"}, nil)

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/close", nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	h.ClosePoll(w, req)

	testutil.AssertStatus(t, w, 200)

	var status string
	if err := conn.QueryRow(`SELECT status FROM poll WHERE id = $1`, pollID).Scan(&status); err != nil {
		t.Fatalf("failed to query status: %v", err)
	}
	if status != models.StatusClosed {
		t.Errorf("expected closed, got %q", status)
	}

	// Closing again is a no-op success
	req = testutil.MakeRequest("POST", "/polls/"+pollID+"/close", nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	h.ClosePoll(w, req)

	testutil.AssertStatus(t, w, 200)
}

func TestClosePoll_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	req := testutil.MakeRequest("POST", "/polls/missing/close", nil, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	h.ClosePoll(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestReopenPoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewPollHandler(polls.NewService(conn), cfg)

	pollID := testutil.CreateTestPoll(t, conn, models.StatusClosed, []string{"A", "B"}, nil)

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/reopen", nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	h.ReopenPoll(w, req)

	testutil.AssertStatus(t, w, 200)

	var status string
	if err := conn.QueryRow(`SELECT status FROM poll WHERE id = $1`, pollID).Scan(&status); err != nil {
		t.Fatalf("failed to query status: %v", err)
	}
	if status != models.StatusActive {
		t.Errorf("expected active, got %q", status)
	}
}
