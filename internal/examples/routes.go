package examples

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the example library routes onto the given router.
func (l *Library) RegisterRoutes(r chi.Router) {
	r.Get("/api/examples", l.handleList)
	r.Get("/api/examples/search", l.handleSearch)
	r.Get("/api/examples/{name}", l.handleGet)
}

func (l *Library) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]Example{"examples": l.List()})
}

func (l *Library) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ex, ok := l.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown example: " + name})
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (l *Library) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := l.Search(r.Context(), query, limit)
	if err != nil {
		if errors.Is(err, ErrSearchDisabled) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("examples: search: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed"})
		return
	}
	if results == nil {
		results = []SearchResult{}
	}

	writeJSON(w, http.StatusOK, map[string][]SearchResult{"results": results})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
