package api

import "net/http"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"dataset": s.Dataset,
	}
	if s.Dataset.Failed {
		body["status"] = "degraded"
	}

	// Entries is queried live; the dataset struct carries the startup
	// snapshot.
	if entries, err := s.DatasetService.Count(r.Context()); err != nil {
		body["status"] = "degraded"
	} else {
		body["entries"] = entries
	}

	writeJSON(w, r, http.StatusOK, body)
}
