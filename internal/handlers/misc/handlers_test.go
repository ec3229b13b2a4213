package misc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vlatan/video-fetch/internal/config"
)

func TestHealthHandler(t *testing.T) {

	s := New(&config.Config{PublicDir: t.TempDir()})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	recorder := httptest.NewRecorder()
	s.HealthHandler(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", recorder.Code, http.StatusOK)
	}

	var got struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}

	if err := json.Unmarshal(recorder.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode the body; %v", err)
	}

	if got.Status != "OK" {
		t.Errorf("got status %q, want %q", got.Status, "OK")
	}

	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Errorf("timestamp %q is not ISO-8601; %v", got.Timestamp, err)
	}
}

func TestStaticHandler(t *testing.T) {

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hi</h1>"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(&config.Config{PublicDir: dir})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"index", "/", http.StatusOK},
		{"file", "/index.html", http.StatusMovedPermanently},
		{"missing file", "/missing.js", http.StatusNotFound},
		{"unclean path", "/static/../index.html", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.URL.Path = tt.path
			recorder := httptest.NewRecorder()

			s.StaticHandler(recorder, req)

			if recorder.Code != tt.status {
				t.Errorf("got status %d, want %d", recorder.Code, tt.status)
			}
		})
	}
}
