package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFactoryRequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	if _, err := NewEmbedder("google"); err == nil {
		t.Fatal("expected error for missing GOOGLE_API_KEY")
	}
}

func TestFactoryEmptyNameMeansNone(t *testing.T) {
	e, err := NewEmbedder("")
	if err != nil {
		t.Fatalf("NewEmbedder: %v", err)
	}
	if e != nil {
		t.Fatalf("embedder = %v, want nil", e)
	}
}

func TestFactoryUnknownProvider(t *testing.T) {
	if _, err := NewEmbedder("cohere"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestOllamaEmbedsBatchInOneCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/api/embed" {
			t.Errorf("path = %q, want /api/embed", r.URL.Path)
		}
		var req ollamaEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Input) != 2 {
			t.Errorf("input count = %d, want 2", len(req.Input))
		}
		json.NewEncoder(w).Encode(ollamaEmbedResponse{
			Embeddings: [][]float32{{0.1, 0.2}, {0.3, 0.4}},
		})
	}))
	defer srv.Close()

	e := NewOllamaEmbedder(srv.URL, "nomic-embed-text")
	vecs, err := e.Embed(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vecs) != 2 || calls != 1 {
		t.Fatalf("got %d vectors in %d calls, want 2 in 1", len(vecs), calls)
	}
}

func TestToChromemFunc(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbedResponse{Embeddings: [][]float32{{1, 0}}})
	}))
	defer srv.Close()

	f := ToChromemFunc(NewOllamaEmbedder(srv.URL, ""))
	vec, err := f(context.Background(), "hello")
	if err != nil {
		t.Fatalf("embed func: %v", err)
	}
	if len(vec) != 2 || vec[0] != 1 {
		t.Fatalf("vec = %v, want [1 0]", vec)
	}
}
