package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/seasonrank/internal/logger"
)

type setRoundEloRequest struct {
	RoundID    int64 `json:"roundId"`
	EloEnabled *bool `json:"eloEnabled"`
}

type setSuperfinalEloRequest struct {
	Code    string `json:"code"`
	Enabled *bool  `json:"enabled"`
}

func (s *Server) handleSetRoundElo(w http.ResponseWriter, r *http.Request) {
	var req setRoundEloRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("set round elo: round_id=%d", req.RoundID)
	if err := s.TournamentService.SetRoundElo(r.Context(), req.RoundID, req.EloEnabled); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleSetSuperfinalElo(w http.ResponseWriter, r *http.Request) {
	var req setSuperfinalEloRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Enabled == nil {
		handleError(w, r, errRequired("enabled"))
		return
	}

	if err := s.TournamentService.SetSuperfinalElo(r.Context(), req.Code, *req.Enabled); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := s.TournamentService.GetTournament(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tournament)
}
