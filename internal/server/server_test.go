package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/reference"
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

type stubProvider struct{}

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: "circle(1, 1, 1);"}, nil
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	library, err := examples.NewLibrary("", nil)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	ref, err := reference.New()
	if err != nil {
		t.Fatalf("reference.New: %v", err)
	}
	return New(cfg, studio.Config{Provider: stubProvider{}}, library, ref)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Config{Port: 0})

	rec := get(t, s.Router(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("body = %q", body)
	}
}

func TestAllRoutesMounted(t *testing.T) {
	s := newTestServer(t, Config{Port: 0})

	routes := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/api/models", http.StatusOK},
		{"/api/examples", http.StatusOK},
		{"/api/examples/bounce", http.StatusOK},
		{"/reference", http.StatusFound},
		{"/reference/shapes", http.StatusOK},
	}
	for _, tt := range routes {
		if rec := get(t, s.Router(), tt.path); rec.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestCORSAllowAll(t *testing.T) {
	s := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest(http.MethodOptions, "/api/models", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestWebSocketMounted(t *testing.T) {
	s := newTestServer(t, Config{Port: 0})
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var ev studio.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read first event: %v", err)
	}
	if ev.Type != studio.EventSettings {
		t.Errorf("first event = %q, want settings", ev.Type)
	}
}
