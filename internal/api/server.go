package api

import (
	"context"
	"time"

	"github.com/vytor/seasonrank/internal/services"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	DB                  Pinger
	StandingsService    services.StandingsService
	TournamentService   services.TournamentService
	FilterPresetService services.FilterPresetService
	RequestTimeout      time.Duration
	AllowedOrigins      []string
}
