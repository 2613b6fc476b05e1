// Package server provides HTTP server management and lifecycle handling for the
// obstetric calculators API. It includes server setup, middleware configuration,
// route management, and graceful shutdown capabilities with proper error handling
// and logging.
package server

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matergo/obstetric-api/config"
	"github.com/matergo/obstetric-api/handlers"
	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/metrics"
)

// Global server start time
var serverStartTime = time.Now()

// formatUptimeHuman formats duration into a human-readable string
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	router      chi.Router
	httpHandler *handlers.HTTPHandlerImpl
	config      *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, httpHandler *handlers.HTTPHandlerImpl) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:      router,
		httpHandler: httpHandler,
		config:      cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	allowDirect := s.config.Env == "dev" || s.config.Env == "test"

	s.router.Use(middleware.RequestID)
	s.router.Use(BlockDirectAccessMiddleware(allowDirect)) // Put BEFORE RealIPMiddleware to see original RemoteAddr
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(metrics.Metrics)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(RateLimitHandler)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Medication safety routes
	s.router.Post("/api/medications/lookup", s.httpHandler.LookupMedication)
	s.router.Post("/api/medications/interactions", s.httpHandler.AnalyzeInteractions)
	s.router.Get("/api/medications/fda-search/{term}", s.httpHandler.FDASearch)
	s.router.Get("/api/medications/fda-search/category/{category}", s.httpHandler.FDASearchByCategory)
	s.router.Get("/api/medications/local/{term}", s.httpHandler.LocalLookup)

	// Calculator routes
	s.router.Post("/api/calculators/{type}", s.httpHandler.ComputeCalculator)
	s.router.Get("/api/history/{type}", s.httpHandler.CalculationHistory)

	// Operational routes
	s.router.Get("/health", s.httpHandler.HealthCheck)
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Service index
	s.router.Get("/", s.serveIndex)
}

// serveIndex returns a small service descriptor so the root path stays useful
// without shipping static documentation files.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	handlers.RespondWithJSON(w, http.StatusOK, map[string]any{
		"service":         "obstetric-api",
		"uptime":          formatUptimeHuman(time.Since(serverStartTime)),
		"memory_usage_mb": int(m.Alloc / 1024 / 1024),
		"endpoints": []string{
			"POST /api/medications/lookup",
			"POST /api/medications/interactions",
			"GET /api/medications/fda-search/{term}",
			"GET /api/medications/fda-search/category/{category}",
			"GET /api/medications/local/{term}",
			"POST /api/calculators/{type}",
			"GET /api/history/{type}",
			"GET /health",
			"GET /metrics",
		},
	})
}

// Handler exposes the configured router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		fmt.Println("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			fmt.Println("Profiling server failed: ", err)
		}
	}()
}
