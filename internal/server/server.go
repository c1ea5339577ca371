// Package server assembles the HTTP surface: the editor, the example
// library, the reference pages, and a health check, behind a shared
// middleware stack.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/sketchpad/internal/editor"
	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/reference"
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool     // allow all CORS origins (dev mode)
	AllowedOrigins []string // extra origins beyond localhost
}

// Server hosts the sketchpad HTTP stack.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
}

// New assembles the router. sessionCfg configures every editor session,
// library backs the example routes, ref the reference pages.
func New(cfg Config, sessionCfg studio.Config, library *examples.Library, ref *reference.Handler) *Server {
	s := &Server{cfg: cfg}
	s.router = s.buildRouter(sessionCfg, library, ref)
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(sessionCfg studio.Config, library *examples.Library, ref *reference.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	corsOpts.AllowedOrigins = append(corsOpts.AllowedOrigins, s.cfg.AllowedOrigins...)
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	ed := editor.New(sessionCfg)

	// The session socket stays open for the whole editing session, so the
	// request timeout wraps only the plain HTTP routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		ed.RegisterRoutes(r)
		if library != nil {
			library.RegisterRoutes(r)
		}
		if ref != nil {
			ref.RegisterRoutes(r)
		}
	})
	ed.RegisterSocket(r)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	// No WriteTimeout: the websocket upgrade clears per-connection deadlines,
	// and every other route is already bounded by the timeout middleware.
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("sketchpad listening on http://localhost%s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
