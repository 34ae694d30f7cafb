package api

import (
	"net/http"

	"github.com/racelens/racelens/internal/errors"
	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
)

func (s *Server) handleRiders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	q := r.URL.Query()
	search := q.Get("q")
	team := q.Get("team")
	category := q.Get("category")
	selectedRider := q.Get("rider")

	log = log.WithFields(map[string]any{
		"search": search,
		"rider":  selectedRider,
	})
	log.Debug("rendering riders page")

	riders, err := s.RiderService.ListRiders(r.Context(), search, team, category)
	if err != nil {
		handleError(w, r, err)
		return
	}

	categories, err := s.RiderService.Categories(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	teams, err := s.TeamService.SelectableTeams(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	var summary *models.RiderSummary
	riderMissing := false
	if selectedRider != "" {
		summary, err = s.RiderService.RiderSummary(r.Context(), selectedRider)
		if err != nil {
			// An unknown rider (stale link, typo) renders the page
			// with a notice instead of a bare 404.
			if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeNotFound {
				riderMissing = true
			} else {
				handleError(w, r, err)
				return
			}
		}
	}

	s.render(w, r, "pages/riders.html", pageData{
		"riders":        riders,
		"categories":    categories,
		"teams":         teams,
		"search":        search,
		"team":          team,
		"category":      category,
		"selected":      selectedRider,
		"summary":       summary,
		"rider_missing": riderMissing,
	})
}
