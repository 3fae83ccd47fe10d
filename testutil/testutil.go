package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/typni/polls-api/auth"
	"github.com/typni/polls-api/cliparse"
	"github.com/typni/polls-api/db"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir with
// the full schema. The busy timeout matters for the concurrency tests,
// where several goroutines write to the same file.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "polls_test.db") +
		"?_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          4170,
		DatabaseType:  "sqlite",
		JWTSecret:     "test-jwt-secret",
		AdminToken:    "test-admin-token",
		VoteRateLimit: 30,
	}
}

// CreateTestPoll inserts a poll with the given options directly and returns
// its ID. status should be "active" or "closed"; expiresAt may be nil.
func CreateTestPoll(t *testing.T, conn *sql.DB, status string, options []string, expiresAt *time.Time) string {
	t.Helper()
	return CreateTestPollAt(t, conn, status, options, expiresAt, time.Now())
}

// CreateTestPollAt is CreateTestPoll with an explicit creation timestamp,
// for tests that assert ordering. Keep timestamps at least a second apart:
// sub-second text timestamps don't order reliably across drivers.
func CreateTestPollAt(t *testing.T, conn *sql.DB, status string, options []string, expiresAt *time.Time, createdAt time.Time) string {
	t.Helper()

	pollID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO poll (id, title, description, status, created_at, expires_at)
		VALUES ($1, 'Test Poll', 'A test poll', $2, $3, $4)
	`, pollID, status, createdAt.UTC(), expiresAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for idx, label := range options {
		_, err := conn.Exec(`
			INSERT INTO poll_option (poll_id, idx, label)
			VALUES ($1, $2, $3)
		`, pollID, idx, label)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
	}

	return pollID
}

// CastTestVote inserts a vote row directly, bypassing the service.
func CastTestVote(t *testing.T, conn *sql.DB, pollID, userID string, selectedOption int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, user_id, selected_option, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), pollID, userID, selectedOption, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountVotes returns the number of stored votes for a poll, optionally
// filtered to one user (userID == "" counts all).
func CountVotes(t *testing.T, conn *sql.DB, pollID, userID string) int {
	t.Helper()

	var count int
	var err error
	if userID == "" {
		err = conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1`, pollID).Scan(&count)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2`,
			pollID, userID).Scan(&count)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// UserToken mints a member bearer token for test requests.
func UserToken(t *testing.T, cfg cliparse.Config, userID string) string {
	t.Helper()

	token, err := auth.GenerateUserToken(userID, cfg.JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint user token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
