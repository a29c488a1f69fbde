package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cng-analyzer/internal/analysis"
	"cng-analyzer/internal/model"
)

// ScenarioFile is the on-disk shape of a list of scenarios to compare.
//
// Example (YAML):
//
//	scenarios:
//	  - name: taxi
//	    scenario:
//	      petrol_price: 680
//	      ...
type ScenarioFile struct {
	Scenarios []ScenarioEntry `json:"scenarios" yaml:"scenarios"`
}

// ScenarioEntry is one named scenario as written in a file.
type ScenarioEntry struct {
	Name     string          `json:"name" yaml:"name"`
	Scenario PartialScenario `json:"scenario" yaml:"scenario"`
}

// PartialScenario holds the fields a file actually sets. Omitted fields are nil;
// an explicit 0 is kept.
type PartialScenario struct {
	PetrolPrice       *float64 `json:"petrol_price" yaml:"petrol_price"`
	CNGPrice          *float64 `json:"cng_price" yaml:"cng_price"`
	DistancePerMonth  *float64 `json:"distance_per_month" yaml:"distance_per_month"`
	PetrolConsumption *float64 `json:"petrol_consumption" yaml:"petrol_consumption"`
	CNGConsumption    *float64 `json:"cng_consumption" yaml:"cng_consumption"`
	ConversionCost    *float64 `json:"conversion_cost" yaml:"conversion_cost"`
}

// Over fills the set fields over defaults.
func (p PartialScenario) Over(defaults model.Scenario) model.Scenario {
	s := defaults
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.PetrolPrice, p.PetrolPrice)
	set(&s.CNGPrice, p.CNGPrice)
	set(&s.DistancePerMonth, p.DistancePerMonth)
	set(&s.PetrolConsumption, p.PetrolConsumption)
	set(&s.CNGConsumption, p.CNGConsumption)
	set(&s.ConversionCost, p.ConversionCost)
	return s
}

// LoadScenarios reads a scenario list. Files ending in .json are parsed as JSON,
// anything else as YAML. Fields a scenario omits take defaults, and unnamed
// scenarios are labeled by position.
func LoadScenarios(path string, defaults model.Scenario) ([]analysis.NamedScenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f ScenarioFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &f)
	} else {
		err = yaml.Unmarshal(raw, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}

	out := make([]analysis.NamedScenario, 0, len(f.Scenarios))
	for i, entry := range f.Scenarios {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		s := entry.Scenario.Over(defaults)
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: scenario %q: %w", path, name, err)
		}
		out = append(out, analysis.NamedScenario{Name: name, Scenario: s})
	}
	return out, nil
}
