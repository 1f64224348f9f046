// Package api provides an HTTP API server for langcode.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/langcode/langcode/internal/config"
	"github.com/langcode/langcode/internal/history"
	"github.com/langcode/langcode/internal/storage/sqlite"
)

// Server represents the HTTP API server.
type Server struct {
	httpServer *http.Server
	store      *sqlite.SQLiteStorage
	historyMgr *history.Manager
	recording  bool
	apiKey     string
}

// Config holds server configuration.
type Config struct {
	Addr   string
	APIKey string // Optional API key for authentication
}

// New creates a new API server.
func New(cfg *Config, appConfig *config.Config) (*Server, error) {
	ctx := context.Background()

	// Initialize storage
	storagePath := appConfig.Storage.Path
	if storagePath == "./langcode.db" {
		storagePath = config.GetDefaultStoragePath()
	}

	if err := config.EnsureStorageDir(storagePath); err != nil {
		return nil, err
	}

	store, err := sqlite.New(storagePath)
	if err != nil {
		return nil, err
	}

	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}

	s := &Server{
		store:      store,
		historyMgr: history.NewManager(store),
		recording:  appConfig.History.Enabled,
		apiKey:     cfg.APIKey,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.corsMiddleware(s.routes()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", s.handleHealth)

	// Lookup endpoint
	mux.HandleFunc("GET /v1/lookup", s.authMiddleware(s.handleLookup))

	// History endpoints
	mux.HandleFunc("GET /v1/history", s.authMiddleware(s.handleListHistory))
	mux.HandleFunc("GET /v1/history/{id}", s.authMiddleware(s.handleGetHistory))
	mux.HandleFunc("DELETE /v1/history/{id}", s.authMiddleware(s.handleDeleteHistory))
	mux.HandleFunc("DELETE /v1/history", s.authMiddleware(s.handleClearHistory))

	return mux
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting API server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.store.Close()
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// authMiddleware checks for API key authentication if configured.
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				auth = r.Header.Get("X-API-Key")
			} else {
				auth = strings.TrimPrefix(auth, "Bearer ")
			}

			if auth != s.apiKey {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next(w, r)
	}
}

// corsMiddleware adds CORS headers.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
