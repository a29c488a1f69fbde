package model

import (
	"errors"
	"fmt"
)

// Scenario defines the vehicle and fuel inputs for one analysis.
// Units:
// - PetrolPrice: ₦ per litre
// - CNGPrice: ₦ per standard cubic metre (SCM)
// - DistancePerMonth: km
// - PetrolConsumption: litres per 100km
// - CNGConsumption: SCM per 100km
// - ConversionCost: ₦, one-time
type Scenario struct {
	PetrolPrice       float64 `json:"petrol_price" yaml:"petrol_price"`
	CNGPrice          float64 `json:"cng_price" yaml:"cng_price"`
	DistancePerMonth  float64 `json:"distance_per_month" yaml:"distance_per_month"`
	PetrolConsumption float64 `json:"petrol_consumption" yaml:"petrol_consumption"`
	CNGConsumption    float64 `json:"cng_consumption" yaml:"cng_consumption"`
	ConversionCost    float64 `json:"conversion_cost" yaml:"conversion_cost"`
}

// DefaultScenario returns the values the input form starts with.
func DefaultScenario() Scenario {
	return Scenario{
		PetrolPrice:       680,
		CNGPrice:          230,
		DistancePerMonth:  1000,
		PetrolConsumption: 12.5,
		CNGConsumption:    6.5,
		ConversionCost:    250000,
	}
}

// Validate enforces the input floor (every field >= 0).
// The cost functions themselves never call this; negative values compute through.
func (s Scenario) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"petrol_price", s.PetrolPrice},
		{"cng_price", s.CNGPrice},
		{"distance_per_month", s.DistancePerMonth},
		{"petrol_consumption", s.PetrolConsumption},
		{"cng_consumption", s.CNGConsumption},
		{"conversion_cost", s.ConversionCost},
	}
	var errs []error
	for _, f := range fields {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", f.name, f.v))
		}
	}
	return errors.Join(errs...)
}
