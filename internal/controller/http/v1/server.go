package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/document_uploader/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	uploadsRepo UploadsRepository,
	attemptsRepo AttemptsRepository,
	requeuer Requeuer,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(uploadsRepo, attemptsRepo, requeuer, gatherer),
		},
	}
}

func NewRouter(
	uploadsRepo UploadsRepository,
	attemptsRepo AttemptsRepository,
	requeuer Requeuer,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	h := NewUploadsHandler(uploadsRepo, attemptsRepo, requeuer)
	r.Route("/api/v1/uploads", func(r chi.Router) {
		r.Get("/failed", h.GetFailedUploads)
		r.Get("/{file_id}", h.GetUpload)
		r.Get("/{file_id}/attempts", h.GetAttempts)
		r.Post("/{file_id}/retry", h.RetryUpload)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
