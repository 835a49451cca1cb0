// Package rating decides which round results count toward rating-weighted
// standings.
package rating

import "github.com/vytor/seasonrank/internal/models"

// DefaultEloEnabled applies to rounds whose flag was never set, so results
// recorded before the flag existed keep counting.
const DefaultEloEnabled = true

// EloEnabled resolves the round-level flag, applying the default when unset.
func EloEnabled(r models.Round) bool {
	if r.EloEnabled == nil {
		return DefaultEloEnabled
	}
	return *r.EloEnabled
}

// Eligible reports whether results of round r count toward rating-weighted
// standings. The tournament-level super-final flag only gates final rounds;
// every other round is governed by its own flag alone.
func Eligible(r models.Round, t models.Tournament) bool {
	if !EloEnabled(r) {
		return false
	}
	if r.IsFinal {
		return t.SuperfinalEloEnabled
	}
	return true
}
