package api

import (
	"net/http"

	"github.com/racelens/racelens/internal/logger"
)

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	raceFilter := r.URL.Query().Get("race")
	if raceFilter == "" {
		raceFilter = "all"
	}
	selected := r.URL.Query()["team"]

	teams, err := s.TeamService.SelectableTeams(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Default to the biggest program so the page is never blank.
	if len(selected) == 0 && len(teams) > 0 {
		selected = []string{teams[0].Team}
	}

	races, err := s.TeamService.Races(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	log = log.WithFields(map[string]any{
		"race_filter": raceFilter,
		"selected":    len(selected),
	})
	log.Debug("computing team comparison")

	metrics, funnel, err := s.TeamService.CompareTeams(r.Context(), raceFilter, selected)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("computed metrics for %d teams, %d funnel rows", len(metrics), len(funnel))
	s.render(w, r, "pages/teams.html", pageData{
		"teams":       teams,
		"selected":    selected,
		"race_filter": raceFilter,
		"races":       races,
		"metrics":     metrics,
		"funnel":      funnel,
		"rivals":      s.RivalTeams,
	})
}
