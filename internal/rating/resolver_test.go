package rating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/rating"
	"github.com/xorcare/pointer"
)

func TestEloEnabled_UnsetBehavesLikeTrue(t *testing.T) {
	unset := models.Round{ID: 1}
	explicit := models.Round{ID: 2, EloEnabled: pointer.Bool(true)}

	assert.True(t, rating.EloEnabled(unset))
	assert.Equal(t, rating.EloEnabled(explicit), rating.EloEnabled(unset))

	for _, superfinal := range []bool{false, true} {
		tournament := models.Tournament{SuperfinalEloEnabled: superfinal}
		for _, final := range []bool{false, true} {
			unset.IsFinal, explicit.IsFinal = final, final
			assert.Equal(t, rating.Eligible(explicit, tournament), rating.Eligible(unset, tournament),
				"final=%t superfinal=%t", final, superfinal)
		}
	}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name       string
		eloEnabled *bool
		isFinal    bool
		superfinal bool
		expected   bool
	}{
		{name: "regular round enabled", eloEnabled: pointer.Bool(true), expected: true},
		{name: "regular round disabled", eloEnabled: pointer.Bool(false), expected: false},
		{name: "regular round ignores tournament flag", eloEnabled: pointer.Bool(true), superfinal: false, expected: true},
		{name: "regular round unset", eloEnabled: nil, expected: true},
		{name: "final round without tournament flag", eloEnabled: pointer.Bool(true), isFinal: true, superfinal: false, expected: false},
		{name: "final round with tournament flag", eloEnabled: pointer.Bool(true), isFinal: true, superfinal: true, expected: true},
		{name: "final round disabled despite tournament flag", eloEnabled: pointer.Bool(false), isFinal: true, superfinal: true, expected: false},
		{name: "final round unset with tournament flag", eloEnabled: nil, isFinal: true, superfinal: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.Round{ID: 10, EloEnabled: tt.eloEnabled, IsFinal: tt.isFinal}
			tournament := models.Tournament{ID: 1, SuperfinalEloEnabled: tt.superfinal}
			assert.Equal(t, tt.expected, rating.Eligible(r, tournament))
		})
	}
}
