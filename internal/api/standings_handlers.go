package api

import (
	"net/http"

	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/standings"
)

type standingsResponse struct {
	Rows []models.StandingsRow `json:"rows"`
}

type yearsResponse struct {
	Years []int `json:"years"`
}

func (s *Server) handleSeasonStandings(w http.ResponseWriter, r *http.Request) {
	s.renderStandings(w, r, standings.ParseFilter(r.URL.Query()))
}

func (s *Server) handleLeagueStandings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	q.Set("category", string(models.CategoryLeague))
	s.renderStandings(w, r, standings.ParseFilter(q))
}

func (s *Server) renderStandings(w http.ResponseWriter, r *http.Request, filter standings.Filter) {
	log := logger.FromContext(r.Context())
	log.Debug("standings request: %s", filter.Key())

	rows, err := s.StandingsService.ComputeStandings(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, standingsResponse{Rows: rows})
}

func (s *Server) handleSeasonYears(w http.ResponseWriter, r *http.Request) {
	s.renderYears(w, r, r.URL.Query().Get("category"))
}

func (s *Server) handleLeagueYears(w http.ResponseWriter, r *http.Request) {
	s.renderYears(w, r, string(models.CategoryLeague))
}

func (s *Server) renderYears(w http.ResponseWriter, r *http.Request, category string) {
	years, err := s.StandingsService.ListYears(r.Context(), category)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, yearsResponse{Years: years})
}
