package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
	"github.com/MikeSquared-Agency/betterfriend/internal/processor"
	"github.com/MikeSquared-Agency/betterfriend/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, repo store.Repository) *Server {
	t.Helper()
	local := engine.NewLocal(engine.New(nil, discardLogger()), 0)
	proc := processor.New(local, repo, nil, discardLogger())
	return NewServer(Options{
		Port:        8760,
		Mode:        "local",
		CORSOrigins: []string{"http://localhost:5173"},
		Processor:   proc,
		Store:       repo,
		Logger:      discardLogger(),
	})
}

func newSQLite(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "telemetry.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "GET", "/api/v1/betterfriend/status", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "betterfriend" {
		t.Errorf("expected agent betterfriend, got %v", body["agent"])
	}
	if body["mode"] != "local" {
		t.Errorf("expected mode local, got %v", body["mode"])
	}
	if body["telemetry"] != false {
		t.Errorf("expected telemetry false, got %v", body["telemetry"])
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "GET", "/nonexistent", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "POST", "/analyze", `{"text":"Me: How are you?\nPartner: Fine.","goal":"reconnect"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, k := range []string{"analysis", "suggestions", "highlights", "interactiveHighlights", "parsedMessages"} {
		if _, ok := body[k]; !ok {
			t.Errorf("response missing %q", k)
		}
	}

	var msgs []map[string]any
	if err := json.Unmarshal(body["parsedMessages"], &msgs); err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Errorf("expected 2 parsed messages, got %d", len(msgs))
	}
}

func TestAnalyzeEndpoint_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid json", `{"text":`, "invalid JSON body"},
		{"unknown goal", `{"text":"Me: hi","goal":"party"}`, "unknown goal"},
	}

	srv := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, "POST", "/analyze", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if !strings.Contains(body["error"], tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, body["error"])
			}
		})
	}
}

func TestScriptsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		query     string
		wantCode  int
		wantStyle string
	}{
		{"", http.StatusOK, "warm"},
		{"?style=concise", http.StatusOK, "concise"},
		{"?style=professional", http.StatusOK, "professional"},
		{"?style=shouty", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(srv, "GET", "/api/v1/scripts"+tt.query, "")
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantStyle == "" {
				return
			}
			var body struct {
				Style   string   `json:"style"`
				Scripts []string `json:"scripts"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.Style != tt.wantStyle || len(body.Scripts) == 0 {
				t.Errorf("unexpected script set %+v", body)
			}
		})
	}
}

func TestStatsEndpoint_NoStore(t *testing.T) {
	srv := newTestServer(t, nil)

	w := do(srv, "GET", "/api/v1/stats", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStatsEndpoint_CountsServedAnalyses(t *testing.T) {
	srv := newTestServer(t, newSQLite(t))

	for _, goal := range []string{"conflict", "conflict", "apologize"} {
		w := do(srv, "POST", "/analyze", `{"text":"Me: hi","goal":"`+goal+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("analyze failed: %d", w.Code)
		}
	}

	w := do(srv, "GET", "/api/v1/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Goals []store.GoalStats `json:"goals"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := map[string]int{"apologize": 1, "conflict": 2}
	if len(body.Goals) != len(want) {
		t.Fatalf("expected %d goals, got %+v", len(want), body.Goals)
	}
	for _, gs := range body.Goals {
		if gs.Analyses != want[gs.Goal] {
			t.Errorf("%s: expected %d analyses, got %d", gs.Goal, want[gs.Goal], gs.Analyses)
		}
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest("OPTIONS", "/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials for explicit origin, got %q", got)
	}

	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin must not be echoed, got %q", got)
	}
}

func TestCORS_WildcardWithoutCredentials(t *testing.T) {
	h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://any.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected handler to run, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://any.example" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("wildcard must not allow credentials, got %q", got)
	}
}

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	srv := NewServer(Options{
		Logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	w := httptest.NewRecorder()
	srv.writeJSON(w, http.StatusOK, math.Inf(1))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Errorf("expected encode failure to be logged, got %q", buf.String())
	}
}
