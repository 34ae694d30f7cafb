package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
	})
	r.Get("/teams", s.handleTeams)
	r.Get("/riders", s.handleRiders)

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", s.handleAPITeams)
		r.Get("/teams/metrics", s.handleAPITeamMetrics)
		r.Get("/riders", s.handleAPIRiders)
		r.Get("/riders/{name}", s.handleAPIRiderSummary)
	})

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	return r
}
