package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Group(func(r chi.Router) {
		if s.RequestTimeout > 0 {
			r.Use(timeoutMiddleware(s.RequestTimeout))
		}

		r.Get("/season/standings", s.handleSeasonStandings)
		r.Get("/season/years", s.handleSeasonYears)
		// Older clients only know about the league views.
		r.Get("/league/standings", s.handleLeagueStandings)
		r.Get("/league/years", s.handleLeagueYears)

		r.Post("/rounds/set-elo", s.handleSetRoundElo)
		r.Post("/tournaments/superfinal-elo", s.handleSetSuperfinalElo)
		r.Get("/tournaments/{code}", s.handleGetTournament)

		r.Get("/filter-presets", s.handleListFilterPresets)
		r.Post("/filter-presets", s.handleCreateFilterPreset)
		r.Put("/filter-presets/{id}", s.handleUpdateFilterPreset)
		r.Delete("/filter-presets/{id}", s.handleDeleteFilterPreset)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errNotFoundRoute(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errMethodNotAllowed(r))
	})
	return r
}

func (s *Server) allowedOrigins() []string {
	if len(s.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return s.AllowedOrigins
}
