package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const voteLimitWindow = 24 * time.Hour

// WithVoteLimit caps how many vote casts a member may attempt per day,
// counted in Redis with a per-user key. A nil client disables the limiter
// entirely, so deployments without Redis still work. Redis failures fail
// open: an abuse guard should not take voting down with it.
func WithVoteLimit(rdb *redis.Client, limit int, next http.HandlerFunc) http.HandlerFunc {
	if rdb == nil {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserID(r)
		if userID == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		key := "vote_limit:" + userID
		ctx := r.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			next(w, r)
			return
		}

		// Set TTL only for the first increment in the window
		if count == 1 {
			if err := rdb.Expire(ctx, key, voteLimitWindow).Err(); err != nil {
				slog.Warn("failed to set rate limit TTL", "error", err, "key", key)
			}
		}

		if count > int64(limit) {
			retryAfter, _ := rdb.TTL(ctx, key).Result()
			slog.Info("vote rate limit exceeded", "user_id", userID, "count", count)
			w.Header().Set("Retry-After", retryAfter.Round(time.Second).String())
			ErrorResponse(w, http.StatusTooManyRequests, "Too many vote attempts, try again later")
			return
		}

		next(w, r)
	}
}
