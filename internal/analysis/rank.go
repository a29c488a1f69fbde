package analysis

import (
	"math"
	"sort"

	"cng-analyzer/internal/model"
)

// NamedScenario is a scenario with a label, e.g. one vehicle in a fleet.
type NamedScenario struct {
	Name     string         `json:"name" yaml:"name"`
	Scenario model.Scenario `json:"scenario" yaml:"scenario"`
}

// Ranked is the outcome of one scenario in a ranking.
type Ranked struct {
	Rank           int                  `json:"rank"`
	Name           string               `json:"name"`
	Scenario       model.Scenario       `json:"scenario"`
	Result         model.Result         `json:"result"`
	Recommendation model.Recommendation `json:"recommendation"`
}

// Rank analyzes each scenario and sorts by payback, fastest first.
// Scenarios without a payback sort last, ordered by savings descending
// (least negative first). Ties keep input order.
func Rank(scenarios []NamedScenario) []Ranked {
	out := make([]Ranked, 0, len(scenarios))
	for _, ns := range scenarios {
		r := model.Analyze(ns.Scenario)
		out = append(out, Ranked{
			Name:           ns.Name,
			Scenario:       ns.Scenario,
			Result:         r,
			Recommendation: r.Recommendation(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Result, out[j].Result)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func less(a, b model.Result) bool {
	am, aok := a.Payback.Months()
	bm, bok := b.Payback.Months()
	switch {
	case aok && bok:
		return am < bm
	case aok != bok:
		return aok
	default:
		return a.MonthlySavings > b.MonthlySavings
	}
}

// Summary aggregates a ranking.
type Summary struct {
	Count           int           `json:"count"`
	WithPayback     int           `json:"with_payback"`
	MinSavings      float64       `json:"min_monthly_savings"`
	MaxSavings      float64       `json:"max_monthly_savings"`
	MeanSavings     float64       `json:"mean_monthly_savings"`
	TotalSavings    float64       `json:"total_monthly_savings"`
	TotalConversion float64       `json:"total_conversion_cost"`
	FleetPayback    model.Payback `json:"fleet_payback_months"`
}

// Summarize totals savings across ranked scenarios. FleetPayback treats them as
// one fleet: total conversion cost over total monthly savings.
func Summarize(ranked []Ranked) Summary {
	s := Summary{Count: len(ranked), FleetPayback: model.NoPayback()}
	if len(ranked) == 0 {
		return s
	}
	s.MinSavings = math.Inf(1)
	s.MaxSavings = math.Inf(-1)
	for _, r := range ranked {
		v := r.Result.MonthlySavings
		s.MinSavings = math.Min(s.MinSavings, v)
		s.MaxSavings = math.Max(s.MaxSavings, v)
		s.TotalSavings += v
		s.TotalConversion += r.Scenario.ConversionCost
		if !r.Result.Payback.IsNone() {
			s.WithPayback++
		}
	}
	s.MeanSavings = s.TotalSavings / float64(len(ranked))
	s.FleetPayback = model.PaybackMonths(s.TotalConversion, s.TotalSavings)
	return s
}
