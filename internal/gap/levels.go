package gap

import "math"

// Policy constants. These are fixed contract values, not tuning knobs.
const (
	// ImproveThreshold separates "improve" from "match"; a proficiency equal to it is a match
	ImproveThreshold = 3.5
	// BonusThreshold is the minimum proficiency for an unrequired skill to count as a bonus match
	BonusThreshold = 4.0
	// BonusCapRatio bounds the match bucket, relative to the role's requirement count, while bonuses are added
	BonusCapRatio = 0.4

	maxProficiency = 5.0
)

// levels is indexed by floored proficiency offsets; see levelAt for clamping
var levels = [...]string{"Beginner", "Intermediate", "Advanced", "Expert", "Master"}

// levelAt returns the level label for a floored index, clamped to [0, len(levels)-1]
func levelAt(x float64) string {
	i := int(math.Floor(x))
	if i < 0 {
		i = 0
	}
	if i > len(levels)-1 {
		i = len(levels) - 1
	}
	return levels[i]
}

// yourLevel labels the user's current proficiency
func yourLevel(proficiency float64) string {
	return levelAt(proficiency - 1)
}

// requiredLevel labels the next level the user should aim for
func requiredLevel(proficiency float64) string {
	return levelAt(proficiency + 1)
}

// roundHalfUp rounds to the nearest integer with .5 going up
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
