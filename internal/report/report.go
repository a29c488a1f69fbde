package report

import (
	"fmt"
	"strings"

	"cng-analyzer/internal/model"
)

// Title is the header line of every textual and PDF report.
const Title = "CNG vs Petrol Efficiency Report"

// Lines returns the body of the report, one entry per line, without the title.
func Lines(r model.Result) []string {
	lines := []string{
		fmt.Sprintf("Petrol Cost per km: %s %s", CurrencyCode, Money(r.PetrolCostPerKm)),
		fmt.Sprintf("CNG Cost per km: %s %s", CurrencyCode, Money(r.CNGCostPerKm)),
		fmt.Sprintf("Monthly Savings: %s %s", CurrencyCode, Money(r.MonthlySavings)),
	}
	if m, ok := r.Payback.Months(); ok {
		lines = append(lines, "Payback Period: "+Months(m))
	} else {
		lines = append(lines, NoPaybackText)
	}
	return lines
}

// Text renders the full plain-text report.
func Text(r model.Result) string {
	var b strings.Builder
	b.WriteString(Title)
	b.WriteString("\n\n")
	for _, l := range Lines(r) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Metric is one headline figure for on-screen display.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metrics returns the headline figures. Payback is only included when one exists.
func Metrics(r model.Result) []Metric {
	out := []Metric{
		{Label: "Petrol Cost/km", Value: GroupedCurrency(r.PetrolCostPerKm)},
		{Label: "CNG Cost/km", Value: GroupedCurrency(r.CNGCostPerKm)},
		{Label: "Monthly Savings", Value: GroupedCurrency(r.MonthlySavings)},
	}
	if m, ok := r.Payback.Months(); ok {
		out = append(out, Metric{Label: "Payback Period", Value: Months(m)})
	}
	return out
}

// Severity hints how a shell should present an Advice message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Advice is the recommendation shown after an analysis.
type Advice struct {
	Tier     model.Recommendation `json:"tier"`
	Severity Severity             `json:"severity"`
	Message  string               `json:"message"`
	// Warning is set when no payback period could be calculated.
	Warning string `json:"warning,omitempty"`
}

// NoSavingsWarning accompanies the not-cost-effective tier.
const NoSavingsWarning = "No savings from CNG. Payback period cannot be calculated."

// Recommend builds the advice for a result.
func Recommend(r model.Result) Advice {
	tier := r.Recommendation()
	m, _ := r.Payback.Months()

	switch tier {
	case model.RecommendationStrong:
		return Advice{
			Tier:     tier,
			Severity: SeveritySuccess,
			Message:  fmt.Sprintf("Great! Switching to CNG is a smart financial choice. You'll recover the cost in about %.1f months.", m),
		}
	case model.RecommendationWorthIt:
		return Advice{
			Tier:     tier,
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("CNG could still be worth it. You'll break even in about %.1f months.", m),
		}
	case model.RecommendationLongPayback:
		return Advice{
			Tier:     tier,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Long payback period (%.1f months). CNG may not be cost-effective for your usage.", m),
		}
	default:
		return Advice{
			Tier:     model.RecommendationNotCostEffective,
			Severity: SeverityError,
			Message:  "Based on your input, switching to CNG may not offer any cost savings.",
			Warning:  NoSavingsWarning,
		}
	}
}
