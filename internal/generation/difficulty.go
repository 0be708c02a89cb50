package generation

// Tier is a user-facing difficulty label.
type Tier string

const (
	TierNovice       Tier = "Novice"
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
	TierExpert       Tier = "Expert"
)

// Level maps a tier onto the 1-5 experience scale the generation service
// expects. Any tier outside the fixed set maps to 3: that is the only
// defined behavior for an invalid value, so callers never fail on it.
func (t Tier) Level() int {
	switch t {
	case TierNovice:
		return 1
	case TierBeginner:
		return 2
	case TierIntermediate:
		return 3
	case TierAdvanced:
		return 4
	case TierExpert:
		return 5
	default:
		return 3
	}
}
