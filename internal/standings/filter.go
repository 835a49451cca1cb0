package standings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vytor/seasonrank/internal/models"
)

// Filter is the fully resolved standings query. Nil pointers mean "no filter".
type Filter struct {
	Category         models.Category
	SeasonYear       *int
	Mode             *int
	BestN            *int
	ParticipationMin int
	// Rated gates results through the rating toggles. Defaults to true.
	Rated bool
}

// ParseFilter resolves raw query parameters. Malformed numbers are treated as
// absent instead of rejected, and a missing category means league, which is
// what older clients expect.
func ParseFilter(q url.Values) Filter {
	f := Filter{
		Category:   ParseCategory(q.Get("category")),
		SeasonYear: parseOptionalInt(q.Get("year")),
		Mode:       parseOptionalInt(q.Get("mode")),
		BestN:      parseOptionalInt(q.Get("best")),
		Rated:      true,
	}
	if f.BestN != nil && *f.BestN < 1 {
		f.BestN = nil
	}
	if p := parseOptionalInt(q.Get("participation")); p != nil && *p > 0 {
		f.ParticipationMin = *p
	}
	if v := strings.TrimSpace(q.Get("rated")); v != "" {
		if rated, err := strconv.ParseBool(v); err == nil {
			f.Rated = rated
		}
	}
	return f
}

// ParseCategory normalises a category parameter. Unknown values are kept as
// given so callers can answer them with an empty result.
func ParseCategory(raw string) models.Category {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return models.CategoryLeague
	}
	return models.Category(c)
}

func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// TournamentFilter is the record store selection for f.
func (f Filter) TournamentFilter() models.TournamentFilter {
	return models.TournamentFilter{
		Category:   f.Category,
		SeasonYear: f.SeasonYear,
		MatchSize:  f.Mode,
	}
}

// Key renders the resolved filter tuple. Any future standings cache must key
// on this plus a data version.
func (f Filter) Key() string {
	return fmt.Sprintf("category=%s|year=%s|mode=%s|best=%s|participation=%d|rated=%t",
		f.Category, optString(f.SeasonYear), optString(f.Mode), optString(f.BestN), f.ParticipationMin, f.Rated)
}

func optString(v *int) string {
	if v == nil {
		return "*"
	}
	return strconv.Itoa(*v)
}
