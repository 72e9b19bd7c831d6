package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/table"
)

const shutdownTimeout = 5 * time.Second

// Server serves one table store over HTTP.
type Server struct {
	store          *table.Store
	allowedOrigins []string
	validate       *validator.Validate
	logger         zerolog.Logger
}

// New creates a server for store. allowedOrigins configures CORS; an empty
// list allows any origin.
func New(store *table.Store, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{
		store:          store,
		allowedOrigins: allowedOrigins,
		validate:       validator.New(),
		logger:         logging.NewLogger("server"),
	}
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(s.logger))
	router.Use(requestMetrics)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", s.healthCheck)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/state", s.getState)
		r.Post("/page", s.changePage)
		r.Post("/selection/toggle", s.toggleRow)
		r.Delete("/selection", s.clearSelection)
		r.Post("/bulk", s.bulkSelect)
		r.Post("/popover/toggle", s.togglePopover)
	})

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("artwork table available")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("server shutdown failed")
			return err
		}
		s.logger.Info().Msg("server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
