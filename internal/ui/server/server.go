package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jub0bs/cors"

	cyberguard "github.com/Radhika-RR/CyberGuard---Chatbot"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/logger"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/client"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/config"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/handlers"
	"github.com/Radhika-RR/CyberGuard---Chatbot/web"
)

const corsMaxAgeInSeconds = 86400 // 24 hours

type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
}

// NewServer creates the UI server: embedded browser assets plus the ui-api endpoints
// that bridge the browser to the CyberGuard backend.
func NewServer(cfg *config.Config, serverLogger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: serverLogger,
	}

	apiClient := client.NewClient(cfg.APIBaseURL, cfg.APIContract, serverLogger)
	if cfg.Environment == "dev" {
		if err := apiClient.EnableContractChecks(); err != nil {
			return nil, fmt.Errorf("enabling backend contract checks: %w", err)
		}
	}

	corsMiddleware, err := newCORSMiddleware(cfg.AllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("CORS configuration failed: %w", err)
	}

	if err := s.setupRoutes(apiClient, corsMiddleware); err != nil {
		return nil, err
	}
	return s, nil
}

// Router returns the UI server's router, exposed for handler tests
func (s *Server) Router() *chi.Mux {
	return s.router
}

// newCORSMiddleware builds the CORS middleware for the ui-api endpoints.
// Returns nil when no origins are configured - the UI and its api are same-origin by
// default, so cross-origin access is opt-in (e.g. a separately hosted dev frontend).
func newCORSMiddleware(allowedOrigins []string) (*cors.Middleware, error) {
	if len(allowedOrigins) == 0 {
		return nil, nil
	}

	origins := make([]string, len(allowedOrigins))
	for i, origin := range allowedOrigins {
		origins[i] = strings.TrimSpace(origin)
	}

	return cors.NewMiddleware(cors.Config{
		Origins: origins,
		Methods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		RequestHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		MaxAgeInSeconds: corsMaxAgeInSeconds,
	})
}

func (s *Server) setupRoutes(apiClient *client.Client, corsMiddleware *cors.Middleware) error {
	handlerService := &handlers.HandlerService{
		ApiClient:   apiClient,
		Environment: s.config.Environment,
	}

	// middleware
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(SecurityHeaders(s.config.Environment))

	// Embedded browser assets
	staticContent, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("embedded static assets missing: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticContent, "index.html")
	})

	// UI server's own liveness check (distinct from the backend health proxied below)
	s.router.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// UI API endpoints (used by the browser frontend)
	s.router.Group(func(r chi.Router) {
		if corsMiddleware != nil {
			r.Use(CORS(corsMiddleware))
		}
		r.Use(RequestSizeLimit(s.config.MaxRequestSize))
		r.Use(RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))

		r.Post("/ui-api/analyze", handlerService.HandleAnalyze)
		r.Post("/ui-api/batch", handlerService.HandleBatchAnalyze)
		r.Post("/ui-api/chat", handlerService.HandleChat)
		r.Get("/ui-api/health", handlerService.HandleHealth)
		r.Get("/ui-api/stats", handlerService.HandleStats)
	})

	return nil
}

// Start runs the UI server until ctx is cancelled, then drains connections
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("UI server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down UI server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cyberguard.ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}
