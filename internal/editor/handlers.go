package editor

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/sketch"
)

// generateRequest is the JSON body of the generation proxy endpoint.
type generateRequest struct {
	Prompt      string   `json:"prompt"`
	ModelName   string   `json:"modelName"`
	Temperature *float64 `json:"temperature"`
}

// generateResponse is the JSON response for a successful generation.
type generateResponse struct {
	Code string `json:"code"`
}

// modelEntry is one selectable model in the models listing.
type modelEntry struct {
	ID                 string  `json:"id"`
	Provider           string  `json:"provider"`
	DefaultTemperature float64 `json:"defaultTemperature"`
}

// handleGenerate is the stateless generation proxy. It runs one vendor call
// per request with the fixed system instruction, extracts the fenced code
// from the reply, and returns it bare.
func (e *Editor) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt is required"})
		return
	}

	model := req.ModelName
	if model == "" {
		model = e.sessionCfg.Model
	}
	temperature := llm.DefaultTemperature(model)
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	resp, err := e.sessionCfg.Provider.Complete(r.Context(), llm.CompletionRequest{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sketch.SystemInstruction},
			{Role: llm.RoleUser, Content: req.Prompt},
		},
		MaxTokens:   e.sessionCfg.MaxTokens,
		Temperature: temperature,
		TopP:        e.sessionCfg.TopP,
		TopK:        e.sessionCfg.TopK,
	})
	if err != nil {
		log.Printf("editor: generate: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "generation failed"})
		return
	}

	code, err := sketch.ExtractCode(resp.Content)
	if err != nil {
		if errors.Is(err, sketch.ErrUnbalancedFence) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("editor: generate: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "generation failed"})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Code: code})
}

func (e *Editor) handleModels(w http.ResponseWriter, r *http.Request) {
	known := llm.KnownModels()
	entries := make([]modelEntry, 0, len(known))
	for _, m := range known {
		entries = append(entries, modelEntry{
			ID:                 m.ID,
			Provider:           m.Provider,
			DefaultTemperature: m.DefaultTemperature,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]modelEntry{"models": entries})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
