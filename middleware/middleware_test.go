package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/typni/polls-api/auth"
	"github.com/typni/polls-api/models"
)

const testSecret = "test-jwt-secret"

func TestWithAuth_ValidToken(t *testing.T) {
	token, err := auth.GenerateUserToken("user-42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	var gotUserID string
	handler := WithAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/polls/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if gotUserID != "user-42" {
		t.Errorf("expected user-42 in context, got %q", gotUserID)
	}
}

func TestWithAuth_Rejections(t *testing.T) {
	handler := WithAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"garbage token", "Bearer nope"},
		{"token without Bearer prefix", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/polls/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestWithAuth_WrongSecret(t *testing.T) {
	token, err := auth.GenerateUserToken("user-42", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	handler := WithAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})

	req := httptest.NewRequest("GET", "/polls/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestWithAdmin(t *testing.T) {
	handler := WithAdmin("admin-tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/polls", nil)
	req.Header.Set("X-Admin-Token", "admin-tok")
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/polls", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/polls", nil)
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with missing token, got %d", w.Code)
	}
}

func TestUserID_Unset(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := UserID(req); got != "" {
		t.Errorf("expected empty user ID, got %q", got)
	}
}

func TestWithVoteLimit_NilClientPassthrough(t *testing.T) {
	called := false
	handler := WithVoteLimit(nil, 5, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest("POST", "/polls/x/votes", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if !called {
		t.Error("expected handler to be called with nil redis client")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"hello":"world"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already voted") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"X"}`))

	var body models.CreatePollRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if body.Title != "X" {
		t.Errorf("expected title X, got %q", body.Title)
	}

	req = httptest.NewRequest("POST", "/", strings.NewReader(`not json`))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("OPTIONS should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/polls", nil)
	req.Header.Set("Origin", "https://typni.org")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "https://typni.org" {
		t.Errorf("expected origin echo, got %q", origin)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-forwarded-for single", map[string]string{"X-Forwarded-For": "1.2.3.4"}, "5.6.7.8:1234", "1.2.3.4"},
		{"x-forwarded-for chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 9.9.9.9"}, "5.6.7.8:1234", "1.2.3.4"},
		{"x-real-ip", map[string]string{"X-Real-IP": "2.3.4.5"}, "5.6.7.8:1234", "2.3.4.5"},
		{"remote addr", nil, "5.6.7.8:1234", "5.6.7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("GetClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
