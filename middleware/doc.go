/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - WithAuth: member JWT validation, stores user_id in the request context
  - WithAdmin: back-office X-Admin-Token validation
  - WithVoteLimit: per-user daily cast limit backed by Redis (nil client
    disables it)
  - CORS: cross-origin headers for the browser frontend

Middleware composes by wrapping http.HandlerFunc:

	mux.HandleFunc("POST /polls/{id}/votes",
		middleware.WithLogging(
			middleware.WithAuth(cfg.JWTSecret,
				middleware.WithVoteLimit(rdb, cfg.VoteRateLimit,
					votingHandler.CastVote))))

# Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handlers free of
encoding boilerplate. UserID reads back the identity set by WithAuth.
GetClientIP resolves the caller address behind proxies.
*/
package middleware
