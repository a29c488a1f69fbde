// Package pipeline runs one analysis end to end: cost model, then each
// consumer of the result (advice, charts, usage log).
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"cng-analyzer/internal/chart"
	"cng-analyzer/internal/model"
	"cng-analyzer/internal/report"
)

// Logger appends one usage-log row per analysis.
type Logger interface {
	Append(s model.Scenario, r model.Result) error
}

// Observer receives analysis outcomes (e.g. metrics). Optional.
type Observer interface {
	ObserveAnalysis(tier model.Recommendation)
	ObserveLogAppendError()
}

// Outcome is everything the shells display for one analysis.
type Outcome struct {
	Scenario model.Scenario
	Result   model.Result
	Metrics  []report.Metric
	Advice   report.Advice
	Charts   []chart.Config
	// Logged is true when the usage log row was written.
	Logged bool
}

type Engine struct {
	log      Logger
	observer Observer
	logger   zerolog.Logger
}

// New returns an engine. A nil log skips usage logging; a nil observer is ignored.
func New(log Logger, observer Observer, logger zerolog.Logger) *Engine {
	return &Engine{log: log, observer: observer, logger: logger}
}

// Run computes the result for s and fans it out. The result is computed before
// the usage log is touched; a log failure is returned with the outcome so the
// caller can still show what was computed.
func (e *Engine) Run(s model.Scenario) (*Outcome, error) {
	r := model.Analyze(s)
	out := &Outcome{
		Scenario: s,
		Result:   r,
		Metrics:  report.Metrics(r),
		Advice:   report.Recommend(r),
		Charts:   chart.All(r),
	}

	if e.observer != nil {
		e.observer.ObserveAnalysis(out.Advice.Tier)
	}
	e.logger.Debug().
		Float64("monthly_savings", r.MonthlySavings).
		Str("payback", r.Payback.String()).
		Str("tier", string(out.Advice.Tier)).
		Msg("analysis computed")

	if e.log == nil {
		return out, nil
	}
	if err := e.log.Append(s, r); err != nil {
		if e.observer != nil {
			e.observer.ObserveLogAppendError()
		}
		e.logger.Error().Err(err).Msg("usage log append failed")
		return out, fmt.Errorf("log analysis: %w", err)
	}
	out.Logged = true
	return out, nil
}
