package router

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/typni/polls-api/cliparse"
	"github.com/typni/polls-api/handlers"
	"github.com/typni/polls-api/middleware"
	"github.com/typni/polls-api/polls"
)

// NewRouter wires handlers and middleware onto a ServeMux and wraps the
// whole mux in the CORS middleware so the browser frontend can call every
// route. rdb may be nil, which disables the vote rate limiter.
func NewRouter(svc *polls.Service, cfg cliparse.Config, rdb *redis.Client) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle (back-office)
	mux.HandleFunc("POST /polls", middleware.WithLogging(
		middleware.WithAdmin(cfg.AdminToken, pollHandler.CreatePoll)))
	mux.HandleFunc("POST /polls/{id}/close", middleware.WithLogging(
		middleware.WithAdmin(cfg.AdminToken, pollHandler.ClosePoll)))
	mux.HandleFunc("POST /polls/{id}/reopen", middleware.WithLogging(
		middleware.WithAdmin(cfg.AdminToken, pollHandler.ReopenPoll)))

	// Voting (members)
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(
		middleware.WithAuth(cfg.JWTSecret,
			middleware.WithVoteLimit(rdb, cfg.VoteRateLimit, votingHandler.CastVote))))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(
		middleware.WithAuth(cfg.JWTSecret, resultsHandler.GetPoll)))

	// Active listing (public)
	mux.HandleFunc("GET /polls", middleware.WithLogging(resultsHandler.ListActivePolls))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("typni polls API v1"))
	})

	return middleware.CORS(mux)
}
