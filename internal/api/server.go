package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/betterfriend/internal/processor"
	"github.com/MikeSquared-Agency/betterfriend/internal/store"
)

// maxRequestBody caps the accepted transcript payload.
const maxRequestBody = 1 << 20

type Server struct {
	router *chi.Mux
	mode   string
	proc   *processor.Processor
	store  store.Repository
	logger *slog.Logger
	http   *http.Server
}

// Options configures a Server. Store may be nil, which disables /api/v1/stats.
type Options struct {
	Port        int
	Mode        string
	CORSOrigins []string
	Processor   *processor.Processor
	Store       store.Repository
	Logger      *slog.Logger
}

func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(CORS(opts.CORSOrigins))

	s := &Server{
		router: router,
		mode:   opts.Mode,
		proc:   opts.Processor,
		store:  opts.Store,
		logger: opts.Logger,
	}

	router.Get("/health", s.health)
	router.Post("/analyze", s.analyze)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/betterfriend/status", s.status)
		r.Get("/scripts", s.scripts)
		r.Get("/stats", s.stats)
	})

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until Shutdown is called, which makes it return nil.
func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"agent":     "betterfriend",
		"mode":      s.mode,
		"telemetry": s.store != nil,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("failed to encode response", "status", code, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}
