package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)
	r.Use(cors(s.cfg.CORS.AllowedOrigins))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		if s.cfg.RateLimit.MaxRequests > 0 {
			r.Use(newIPLimiter(s.cfg.RateLimit.MaxRequests, s.cfg.RateLimit.Window).middleware)
		}
		r.Get("/quiz", s.handleGetQuiz)
		r.Post("/quiz", s.handlePostQuiz)
		r.Post("/paper", s.handlePaper)
		r.Post("/mark", s.handleMark)
		r.Get("/tip", s.handleTip)
	})
	return r
}
