package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vlatan/video-fetch/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		TranslationProvider: config.OpenAI,
		RapidAPIHost:        "127.0.0.1:0",
		TranscriptURL:       "http://127.0.0.1:0/get_transcript",
		UpstreamTimeout:     time.Second,
		ShutdownTimeout:     time.Second,
		PublicDir:           t.TempDir(),
		CorsOrigin:          "*",
		Port:                3000,
	}

	s, err := NewServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to create the server; %v", err)
	}

	server := httptest.NewServer(s.HttpServer.Handler)
	t.Cleanup(server.Close)
	return server
}

func TestRoutes(t *testing.T) {

	server := newTestServer(t)

	tests := []struct {
		name, method, path, body string
		status                   int
	}{
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"preflight", http.MethodOptions, "/api/download", "", http.StatusNoContent},
		{"missing url", http.MethodPost, "/api/download", `{}`, http.StatusBadRequest},
		{"invalid url", http.MethodPost, "/api/download", `{"url":"https://example.com/"}`, http.StatusBadRequest},
		{"upstream down", http.MethodPost, "/api/download", `{"url":"https://youtu.be/abc"}`, http.StatusInternalServerError},
		{"missing static file", http.MethodGet, "/missing.js", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			resp, err := server.Client().Do(req)
			if err != nil {
				t.Fatalf("request failed; %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.status)
			}

			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("got CORS origin %q, want %q", got, "*")
			}
		})
	}
}

func TestHealthRoute(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed; %v", err)
	}
	defer resp.Body.Close()

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode the body; %v", err)
	}

	if got["status"] != "OK" {
		t.Errorf("got status %q, want %q", got["status"], "OK")
	}

	if _, err := time.Parse(time.RFC3339, got["timestamp"]); err != nil {
		t.Errorf("invalid timestamp %q; %v", got["timestamp"], err)
	}
}

func TestWriteTimeout(t *testing.T) {

	tests := []struct {
		name              string
		upstream, request time.Duration
		expected          time.Duration
	}{
		{"request timeout wins", 30 * time.Second, time.Minute, 70 * time.Second},
		{"every upstream call", 30 * time.Second, 0, 130 * time.Second},
		{"no timeouts", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{UpstreamTimeout: tt.upstream, RequestTimeout: tt.request}
			if got := writeTimeout(cfg); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}
