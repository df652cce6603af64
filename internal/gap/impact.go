package gap

import "math"

// Salary impact and learning time estimates, in lakhs and hours
const (
	minImpactLakhs   = 1.5
	maxImpactLakhs   = 15.0
	minImpactDemand  = 30.0
	maxImpactDemand  = 100.0
	minGainFactor    = 0.3
	rupeesPerDemand  = 10000.0
	rupeesPerLakh    = 100000.0
	gapTargetLevel   = 3.0
	minLearningHours = 50
	maxLearningHours = 300
)

// improveTargetLevel is the whole proficiency level at or above ImproveThreshold
var improveTargetLevel = math.Ceil(ImproveThreshold)

// SalaryImpact estimates the salary gain, in lakhs, of moving a skill from current to target proficiency.
// Demand is clamped to [30, 100]; the gain factor never drops below 0.3; the result is rounded
// to one decimal and clamped to [1.5, 15.0].
func SalaryImpact(marketDemand, current, target float64) float64 {
	demand := clampFloat(marketDemand, minImpactDemand, maxImpactDemand)
	gain := math.Max(minGainFactor, (target-current)/maxProficiency)
	lakhs := demand * rupeesPerDemand * gain / rupeesPerLakh
	lakhs = math.Floor(lakhs*10+0.5) / 10
	return clampFloat(lakhs, minImpactLakhs, maxImpactLakhs)
}

// LearningHours estimates study time for a skill as twice its demand, clamped to [50, 300]
func LearningHours(marketDemand float64) int {
	return clamp(roundHalfUp(marketDemand*2), minLearningHours, maxLearningHours)
}
