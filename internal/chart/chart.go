// Package chart turns an analysis result into chart data and draws it.
//
// Config is plain data (JSON-friendly) so an API client can draw its own
// charts; Render draws the same Config server-side as SVG or PNG.
package chart

import (
	"fmt"
	"math"

	"cng-analyzer/internal/model"
)

// Kind names one of the charts produced per analysis.
type Kind string

const (
	KindComparison Kind = "comparison"
	KindCumulative Kind = "cumulative"
)

// Kinds lists every chart an analysis produces, in display order.
var Kinds = []Kind{KindComparison, KindCumulative}

// CumulativeMonths is how many months the cumulative savings line covers.
const CumulativeMonths = 12

// Config defines how to render a chart.
type Config struct {
	Kind      Kind     `json:"kind"`
	ChartType string   `json:"chartType"`
	Title     string   `json:"title"`
	XAxis     string   `json:"xAxis,omitempty"`
	YAxis     string   `json:"yAxis,omitempty"`
	Series    []Series `json:"series"`
	ShowGrid  bool     `json:"showGrid"`
}

// Series is one named run of points.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point is a single labeled value. Color overrides the series color (bar charts).
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

const (
	colorPetrol  = "#EF4444"
	colorCNG     = "#10B981"
	colorSavings = "#4F46E5"
)

// Comparison is the three-bar chart: monthly petrol cost, monthly CNG cost, monthly savings.
func Comparison(r model.Result) Config {
	return Config{
		Kind:      KindComparison,
		ChartType: "bar",
		Title:     "Monthly Cost Comparison: Petrol vs CNG",
		YAxis:     "NGN (Monthly Cost)",
		Series: []Series{{
			Name: "Monthly",
			Data: []Point{
				{Label: "Petrol", Value: roundTo2(r.MonthlyPetrolCost), Color: colorPetrol},
				{Label: "CNG", Value: roundTo2(r.MonthlyCNGCost), Color: colorCNG},
				{Label: "Savings", Value: roundTo2(r.MonthlySavings), Color: colorSavings},
			},
		}},
	}
}

// Cumulative is the savings line over CumulativeMonths: point m is savings*m.
func Cumulative(r model.Result) Config {
	points := make([]Point, 0, CumulativeMonths)
	for m := 1; m <= CumulativeMonths; m++ {
		points = append(points, Point{
			Label: fmt.Sprintf("%d", m),
			Value: roundTo2(r.MonthlySavings * float64(m)),
		})
	}
	return Config{
		Kind:      KindCumulative,
		ChartType: "line",
		Title:     "Cumulative Savings Over 12 Months",
		XAxis:     "Month",
		YAxis:     "NGN (Cumulative Savings)",
		Series: []Series{{
			Name:  "Cumulative Savings",
			Data:  points,
			Color: colorSavings,
		}},
		ShowGrid: true,
	}
}

// Build returns the chart of the given kind.
func Build(kind Kind, r model.Result) (Config, error) {
	switch kind {
	case KindComparison:
		return Comparison(r), nil
	case KindCumulative:
		return Cumulative(r), nil
	default:
		return Config{}, fmt.Errorf("unknown chart %q", kind)
	}
}

// All builds every chart for r.
func All(r model.Result) []Config {
	out := make([]Config, 0, len(Kinds))
	for _, k := range Kinds {
		c, _ := Build(k, r)
		out = append(out, c)
	}
	return out
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
