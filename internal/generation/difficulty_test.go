package generation

import "testing"

func TestTierLevel(t *testing.T) {
	cases := []struct {
		tier Tier
		want int
	}{
		{TierNovice, 1},
		{TierBeginner, 2},
		{TierIntermediate, 3},
		{TierAdvanced, 4},
		{TierExpert, 5},
		{Tier("Legendary"), 3},
		{Tier(""), 3},
	}

	for _, tc := range cases {
		if got := tc.tier.Level(); got != tc.want {
			t.Errorf("Tier(%q).Level() = %d, want %d", tc.tier, got, tc.want)
		}
	}
}
