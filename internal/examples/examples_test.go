package examples

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/sketchpad/internal/embeddings"
)

// stubEmbedder maps any text mentioning a ball onto one axis and everything
// else onto the other, giving deterministic nearest-neighbor results.
type stubEmbedder struct{}

func (stubEmbedder) Name() string    { return "stub" }
func (stubEmbedder) Dimensions() int { return 2 }

func (stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if strings.Contains(strings.ToLower(t), "ball") {
			out[i] = []float32{1, 0}
		} else {
			out[i] = []float32{0, 1}
		}
	}
	return out, nil
}

func newTestLibrary(t *testing.T, localDir string, embedder embeddings.Embedder) *Library {
	t.Helper()
	lib, err := NewLibrary(localDir, embedder)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func newTestRouter(t *testing.T, localDir string, embedder embeddings.Embedder) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	newTestLibrary(t, localDir, embedder).RegisterRoutes(r)
	return r
}

func TestLibraryLoadsBuiltins(t *testing.T) {
	lib := newTestLibrary(t, "", nil)

	for _, name := range []string{"bounce", "clock", "grid", "spiral", "starfield", "waves"} {
		ex, ok := lib.Get(name)
		if !ok {
			t.Errorf("missing builtin example %q", name)
			continue
		}
		if ex.Description == "" {
			t.Errorf("%s: empty description", name)
		}
		if !strings.Contains(ex.Code, "function setup()") {
			t.Errorf("%s: code missing setup()", name)
		}
	}
}

func TestListOmitsCode(t *testing.T) {
	lib := newTestLibrary(t, "", nil)

	for _, ex := range lib.List() {
		if ex.Code != "" {
			t.Fatalf("%s: List returned code", ex.Name)
		}
	}
}

func TestLocalDirExtendsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	custom := "// my custom sketch\nfunction setup() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.js"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	override := "function setup() { createCanvas(10, 10); }\n"
	if err := os.WriteFile(filepath.Join(dir, "bounce.js"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := newTestLibrary(t, dir, nil)

	ex, ok := lib.Get("custom")
	if !ok {
		t.Fatal("custom example not loaded")
	}
	if ex.Description != "my custom sketch" {
		t.Errorf("description = %q", ex.Description)
	}

	ex, _ = lib.Get("bounce")
	if ex.Code != override {
		t.Errorf("local bounce.js did not override the builtin")
	}
	if ex.Description != "" {
		t.Errorf("override description = %q, want empty", ex.Description)
	}
}

func TestParseDescription(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"// a red circle\ncode();", "a red circle"},
		{"//no space\ncode();", "no space"},
		{"function setup() {}", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseDescription(tt.src); got != tt.want {
			t.Errorf("parseDescription(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestListEndpoint(t *testing.T) {
	r := newTestRouter(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/examples", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Examples []Example `json:"examples"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Examples) < 6 {
		t.Fatalf("got %d examples, want at least 6", len(resp.Examples))
	}
	if resp.Examples[0].Name != "bounce" {
		t.Errorf("first example = %q, want bounce (sorted)", resp.Examples[0].Name)
	}
}

func TestGetEndpoint(t *testing.T) {
	r := newTestRouter(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/examples/spiral", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var ex Example
	if err := json.Unmarshal(rec.Body.Bytes(), &ex); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(ex.Code, "rotate(") {
		t.Errorf("spiral code missing rotate call")
	}
}

func TestGetUnknownExample(t *testing.T) {
	r := newTestRouter(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/examples/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	r := newTestRouter(t, "", stubEmbedder{})

	req := httptest.NewRequest(http.MethodGet, "/api/examples/search", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSearchWithoutEmbedder(t *testing.T) {
	r := newTestRouter(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/examples/search?q=ball", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestSearchFindsNearestExample(t *testing.T) {
	r := newTestRouter(t, "", stubEmbedder{})

	req := httptest.NewRequest(http.MethodGet, "/api/examples/search?q=a+bouncing+ball&limit=1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Name != "bounce" {
		t.Errorf("nearest example = %q, want bounce", resp.Results[0].Name)
	}
	if resp.Results[0].Similarity < 0.9 {
		t.Errorf("similarity = %v, want close to 1", resp.Results[0].Similarity)
	}
}
