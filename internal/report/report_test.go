package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cng-analyzer/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "whole", v: 85, want: "85.00"},
		{name: "two places", v: 14.95, want: "14.95"},
		{name: "float noise", v: 70050.00000000001, want: "70050.00"},
		{name: "binary below half", v: 1.005, want: "1.00"},
		{name: "exact tie to even", v: 0.125, want: "0.12"},
		{name: "exact tie up to even", v: 0.375, want: "0.38"},
		{name: "negative zero", v: -0.001, want: "-0.00"},
		{name: "negative", v: -1234.5, want: "-1234.50"},
		{name: "zero", v: 0, want: "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.v))
		})
	}
}

func TestGroupedCurrency(t *testing.T) {
	assert.Equal(t, "₦70,050.00", GroupedCurrency(70050))
	assert.Equal(t, "₦85.00", GroupedCurrency(85))
	assert.Equal(t, "₦1,234,567.89", GroupedCurrency(1234567.891))
	assert.Equal(t, "-₦12,000.50", GroupedCurrency(-12000.5))
	assert.Equal(t, "₦0.00", GroupedCurrency(-0.001))
	assert.Equal(t, "₦1.00", GroupedCurrency(1.005))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₦14.95", Currency(14.95))
}

func TestPaybackText(t *testing.T) {
	assert.Equal(t, "3.6 months", PaybackText(model.PaybackIn(3.5688793718772305)))
	assert.Equal(t, "12.0 months", PaybackText(model.PaybackIn(12)))
	assert.Equal(t, NoPaybackText, PaybackText(model.NoPayback()))
}

func TestText_DefaultScenario(t *testing.T) {
	got := Text(model.Analyze(model.DefaultScenario()))

	want := strings.Join([]string{
		"CNG vs Petrol Efficiency Report",
		"",
		"Petrol Cost per km: NGN 85.00",
		"CNG Cost per km: NGN 14.95",
		"Monthly Savings: NGN 70050.00",
		"Payback Period: 3.6 months",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestText_NoPayback(t *testing.T) {
	s := model.DefaultScenario()
	s.CNGPrice = 5000
	got := Text(model.Analyze(s))

	assert.Contains(t, got, "Monthly Savings: NGN -")
	assert.Contains(t, got, NoPaybackText)
	assert.NotContains(t, got, "Payback Period:")
}

func TestMetrics(t *testing.T) {
	m := Metrics(model.Analyze(model.DefaultScenario()))
	require.Len(t, m, 4)
	assert.Equal(t, Metric{Label: "Petrol Cost/km", Value: "₦85.00"}, m[0])
	assert.Equal(t, Metric{Label: "CNG Cost/km", Value: "₦14.95"}, m[1])
	assert.Equal(t, Metric{Label: "Monthly Savings", Value: "₦70,050.00"}, m[2])
	assert.Equal(t, Metric{Label: "Payback Period", Value: "3.6 months"}, m[3])

	s := model.DefaultScenario()
	s.DistancePerMonth = 0
	assert.Len(t, Metrics(model.Analyze(s)), 3)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		payback  model.Payback
		tier     model.Recommendation
		severity Severity
		contains string
	}{
		{"strong", model.PaybackIn(3.57), model.RecommendationStrong, SeveritySuccess, "about 3.6 months"},
		{"worth it", model.PaybackIn(9), model.RecommendationWorthIt, SeverityInfo, "break even in about 9.0 months"},
		{"long", model.PaybackIn(20), model.RecommendationLongPayback, SeverityWarning, "Long payback period (20.0 months)"},
		{"none", model.NoPayback(), model.RecommendationNotCostEffective, SeverityError, "may not offer any cost savings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Recommend(model.Result{Payback: tt.payback})
			assert.Equal(t, tt.tier, a.Tier)
			assert.Equal(t, tt.severity, a.Severity)
			assert.Contains(t, a.Message, tt.contains)
			if tt.payback.IsNone() {
				assert.Equal(t, NoSavingsWarning, a.Warning)
			} else {
				assert.Empty(t, a.Warning)
			}
		})
	}
}
