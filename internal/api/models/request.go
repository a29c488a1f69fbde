package models

import "cng-analyzer/internal/model"

// AnalyzeRequest represents the request body for running an analysis.
// Omitted fields take the configured defaults; every field has a floor of 0.
type AnalyzeRequest struct {
	PetrolPrice       *float64 `json:"petrol_price" binding:"omitempty,min=0"`
	CNGPrice          *float64 `json:"cng_price" binding:"omitempty,min=0"`
	DistancePerMonth  *float64 `json:"distance_per_month" binding:"omitempty,min=0"`
	PetrolConsumption *float64 `json:"petrol_consumption" binding:"omitempty,min=0"`
	CNGConsumption    *float64 `json:"cng_consumption" binding:"omitempty,min=0"`
	ConversionCost    *float64 `json:"conversion_cost" binding:"omitempty,min=0"`
}

// Scenario fills the request's fields over defaults.
func (r AnalyzeRequest) Scenario(defaults model.Scenario) model.Scenario {
	s := defaults
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.PetrolPrice, r.PetrolPrice)
	set(&s.CNGPrice, r.CNGPrice)
	set(&s.DistancePerMonth, r.DistancePerMonth)
	set(&s.PetrolConsumption, r.PetrolConsumption)
	set(&s.CNGConsumption, r.CNGConsumption)
	set(&s.ConversionCost, r.ConversionCost)
	return s
}

// CompareRequest represents a request to rank several scenarios
type CompareRequest struct {
	Scenarios []NamedScenarioRequest `json:"scenarios" binding:"required,min=1,dive"`
}

// NamedScenarioRequest is one labeled scenario in a comparison
type NamedScenarioRequest struct {
	Name     string         `json:"name" binding:"required"`
	Scenario AnalyzeRequest `json:"scenario"`
}
