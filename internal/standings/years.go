package standings

import (
	"slices"
)

// DistinctYearsDesc returns years without duplicates, most recent first.
func DistinctYearsDesc(years []int) []int {
	out := slices.Clone(years)
	if out == nil {
		out = []int{}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)
	return out
}
