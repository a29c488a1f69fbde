package model

// Recommendation is the advice tier derived from a payback period.
// Keep these values stable; they are used as metric labels and in API output.
type Recommendation string

const (
	RecommendationStrong           Recommendation = "STRONGLY_RECOMMENDED"
	RecommendationWorthIt          Recommendation = "WORTH_CONSIDERING"
	RecommendationLongPayback      Recommendation = "LONG_PAYBACK"
	RecommendationNotCostEffective Recommendation = "NOT_COST_EFFECTIVE"
)

// Payback thresholds in months. A value equal to a threshold belongs to the lower tier.
const (
	StrongPaybackMonths  = 6.0
	WorthItPaybackMonths = 12.0
)

// Classify maps a payback period onto a recommendation tier.
func Classify(p Payback) Recommendation {
	months, ok := p.Months()
	switch {
	case !ok:
		return RecommendationNotCostEffective
	case months <= StrongPaybackMonths:
		return RecommendationStrong
	case months <= WorthItPaybackMonths:
		return RecommendationWorthIt
	default:
		return RecommendationLongPayback
	}
}
