// Package editor serves the sketch editor: the embedded page, a WebSocket
// bridge that drives one studio session per connection, and the stateless
// generation proxy.
package editor

import (
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// starterSketch is loaded into a fresh session when no other initial code is
// configured.
const starterSketch = `function setup() {
  createCanvas(400, 400);
}

function draw() {
  background(220);
  ellipse(width / 2, height / 2, 100, 100);
}`

// Editor holds the session configuration shared by every connection.
type Editor struct {
	sessionCfg studio.Config
}

// New creates an Editor. Zero fields of cfg are filled with the studio
// defaults, and an empty InitialCode gets the starter sketch.
func New(cfg studio.Config) *Editor {
	cfg = cfg.WithDefaults()
	if cfg.InitialCode == "" {
		cfg.InitialCode = starterSketch
	}
	return &Editor{sessionCfg: cfg}
}

// RegisterRoutes mounts the editor's plain HTTP routes onto the given router.
func (e *Editor) RegisterRoutes(r chi.Router) {
	r.Get("/", e.ServeIndex)
	r.Post("/api/generate", e.handleGenerate)
	r.Get("/api/models", e.handleModels)
}

// RegisterSocket mounts the session WebSocket route. It is registered apart
// from the HTTP routes because the socket outlives any request timeout
// middleware on the router.
func (e *Editor) RegisterSocket(r chi.Router) {
	r.Get("/ws", e.handleWebSocket)
}
