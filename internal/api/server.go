package api

import (
	"html/template"
	"net/http"

	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
	"github.com/racelens/racelens/internal/services"
)

type Server struct {
	TeamService    services.TeamService
	RiderService   services.RiderService
	DatasetService services.DatasetService
	Templates      *template.Template
	Dataset        models.DatasetStatus
	RivalTeams     []string
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["dataset"]; !ok {
		data["dataset"] = s.Dataset
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
