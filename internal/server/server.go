// Package server provides the HTTP REST API for the content engine.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	generator  ContentGenerator
	engine     WorkflowEngine
	corsOrigin string
}

// Config holds server configuration
type Config struct {
	Port       string
	CORSOrigin string
}

// New creates a new server instance over the given collaborators.
func New(cfg Config, store Store, generator ContentGenerator, engine WorkflowEngine) *Server {
	s := &Server{
		store:      store,
		generator:  generator,
		engine:     engine,
		corsOrigin: cfg.CORSOrigin,
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Direct generation path
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/generate/status/{id}", s.handleGenerationStatus)
	mux.HandleFunc("GET /api/generate/history", s.handleGenerationHistory)

	// Async workflow path
	mux.HandleFunc("POST /api/n8n/trigger", s.handleTrigger)
	mux.HandleFunc("POST /api/n8n/webhook/result", s.handleWebhookResult)
	mux.HandleFunc("GET /api/n8n/status/{executionId}", s.handleExecutionStatus)
	mux.HandleFunc("GET /api/n8n/workflows", s.handleListWorkflows)
	mux.HandleFunc("GET /api/n8n/workflows/{id}", s.handleGetWorkflow)

	// Articles
	mux.HandleFunc("GET /api/articles", s.handleListArticles)
	mux.HandleFunc("GET /api/articles/{id}", s.handleGetArticle)
	mux.HandleFunc("PUT /api/articles/{id}", s.handleUpdateArticle)
	mux.HandleFunc("DELETE /api/articles/{id}", s.handleDeleteArticle)

	// Dashboard
	mux.HandleFunc("GET /api/stats", s.handleStats)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // direct generation runs two provider calls
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] error: %v", err)
		}
	}()

	<-stop
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("[server] stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "Server is running",
		"timestamp": time.Now().UTC(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
