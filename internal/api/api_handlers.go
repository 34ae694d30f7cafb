package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/logger"
)

func (s *Server) handleAPITeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.TeamService.SelectableTeams(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"teams": teams})
}

func (s *Server) handleAPITeamMetrics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	q := r.URL.Query()
	raceFilter := q.Get("race")
	if raceFilter == "" {
		raceFilter = "all"
	}
	selected := q["team"]
	if len(selected) == 0 {
		handleError(w, r, errors.NewBadRequestError("at least one team parameter is required"))
		return
	}

	log.Debug("api team metrics: race=%q, teams=%d", raceFilter, len(selected))

	metrics, funnel, err := s.TeamService.CompareTeams(r.Context(), raceFilter, selected)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"race_filter": raceFilter,
		"metrics":     metrics,
		"funnel":      funnel,
	})
}

func (s *Server) handleAPIRiders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	riders, err := s.RiderService.ListRiders(r.Context(), q.Get("q"), q.Get("team"), q.Get("category"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"riders": riders})
}

func (s *Server) handleAPIRiderSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		handleError(w, r, errors.NewBadRequestError("rider name is required"))
		return
	}

	summary, err := s.RiderService.RiderSummary(r.Context(), name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}
