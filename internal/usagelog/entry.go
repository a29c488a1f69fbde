package usagelog

import (
	"time"

	"cng-analyzer/internal/model"
)

// Entry is one row of the usage log: the inputs of an analysis and what it produced.
type Entry struct {
	Date time.Time

	PetrolPrice       float64
	CNGPrice          float64
	DistancePerMonth  float64
	PetrolConsumption float64
	CNGConsumption    float64

	PetrolCostPerKm float64
	CNGCostPerKm    float64
	MonthlySavings  float64
	Payback         model.Payback
}

// NewEntry flattens a scenario and its result into a log row stamped at now.
func NewEntry(now time.Time, s model.Scenario, r model.Result) Entry {
	return Entry{
		Date:              now,
		PetrolPrice:       s.PetrolPrice,
		CNGPrice:          s.CNGPrice,
		DistancePerMonth:  s.DistancePerMonth,
		PetrolConsumption: s.PetrolConsumption,
		CNGConsumption:    s.CNGConsumption,
		PetrolCostPerKm:   r.PetrolCostPerKm,
		CNGCostPerKm:      r.CNGCostPerKm,
		MonthlySavings:    r.MonthlySavings,
		Payback:           r.Payback,
	}
}
