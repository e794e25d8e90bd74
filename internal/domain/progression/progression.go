// Package progression derives a user's gamification state from their
// cumulative review count. It is pure: same input, same output, no I/O.
package progression

// XPPerReview is how much experience a single submitted review is worth.
const XPPerReview = 10

// Tier is one of the fixed progression stages. RequiredXP is an inclusive
// lower bound: a user sitting exactly on the threshold is in the tier.
type Tier struct {
	Level      int    `json:"level"`
	RequiredXP int    `json:"requiredXp"`
	Label      string `json:"label"`
	Icon       string `json:"icon"`
}

// tiers is the fixed five-stage level table.
var tiers = []Tier{
	{Level: 1, RequiredXP: 0, Label: "Level 1", Icon: "bronze"},
	{Level: 2, RequiredXP: 10, Label: "Level 2", Icon: "silver"},
	{Level: 3, RequiredXP: 50, Label: "Level 3", Icon: "gold"},
	{Level: 4, RequiredXP: 100, Label: "Level 4", Icon: "purple"},
	{Level: 5, RequiredXP: 1000, Label: "Level 5", Icon: "red"},
}

// MaxLevel is the highest attainable level.
const MaxLevel = 5

// Tiers returns a copy of the level table for display purposes.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)

	return out
}

// State is the full derived gamification state for a user.
type State struct {
	Level           int     `json:"level"`
	XP              int     `json:"xp"`
	XPToNextLevel   int     `json:"xpToNextLevel"`   // 0 at max level.
	ProgressPercent float64 `json:"progressPercent"` // 0-100 within the current tier; 100 at max level.
}

// Compute maps a cumulative review count to its derived progression state.
// Negative counts are treated as zero.
func Compute(reviewCount int) State {
	if reviewCount < 0 {
		reviewCount = 0
	}

	xp := reviewCount * XPPerReview

	// Highest tier whose threshold the XP meets; thresholds are inclusive.
	level := 1
	for _, tier := range tiers {
		if xp >= tier.RequiredXP {
			level = tier.Level
		}
	}

	if level >= MaxLevel {
		return State{
			Level:           MaxLevel,
			XP:              xp,
			XPToNextLevel:   0,
			ProgressPercent: 100,
		}
	}

	current := tiers[level-1]
	next := tiers[level]

	progress := float64(xp-current.RequiredXP) / float64(next.RequiredXP-current.RequiredXP) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return State{
		Level:           level,
		XP:              xp,
		XPToNextLevel:   next.RequiredXP - xp,
		ProgressPercent: progress,
	}
}
