package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/seasonrank/internal/models"
)

type filterPresetsResponse struct {
	Presets []models.FilterPreset `json:"presets"`
}

type filterPresetRequest struct {
	Context   string  `json:"context"`
	Label     string  `json:"label"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	DateFrom  *string `json:"date_from"`
	DateTo    *string `json:"date_to"`
	Pinned    bool    `json:"pinned"`
	SortOrder int     `json:"sort_order"`
}

func (req filterPresetRequest) preset(id string) models.FilterPreset {
	return models.FilterPreset{
		ID:        id,
		Context:   req.Context,
		Label:     req.Label,
		Category:  req.Category,
		Name:      req.Name,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Pinned:    req.Pinned,
		SortOrder: req.SortOrder,
	}
}

func (s *Server) handleListFilterPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.FilterPresetService.List(r.Context(), r.URL.Query().Get("context"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, filterPresetsResponse{Presets: presets})
}

func (s *Server) handleCreateFilterPreset(w http.ResponseWriter, r *http.Request) {
	var req filterPresetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	preset, err := s.FilterPresetService.Create(r.Context(), req.preset(""))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, preset)
}

func (s *Server) handleUpdateFilterPreset(w http.ResponseWriter, r *http.Request) {
	var req filterPresetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	preset, err := s.FilterPresetService.Update(r.Context(), req.preset(chi.URLParam(r, "id")))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, preset)
}

func (s *Server) handleDeleteFilterPreset(w http.ResponseWriter, r *http.Request) {
	if err := s.FilterPresetService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, okResponse{OK: true})
}
