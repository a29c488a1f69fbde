package model

// CostPerKm converts a fuel price and a per-100km consumption into cost per km.
func CostPerKm(price, consumptionPer100km float64) float64 {
	return price * consumptionPer100km / 100
}

// MonthlySavings is what switching saves over distance km. It is negative when
// CNG is the more expensive fuel.
func MonthlySavings(distance, petrolCostPerKm, cngCostPerKm float64) float64 {
	return distance * (petrolCostPerKm - cngCostPerKm)
}

// PaybackMonths divides the conversion cost by monthly savings.
// Savings <= 0 never pay the conversion back.
func PaybackMonths(conversionCost, monthlySavings float64) Payback {
	if monthlySavings > 0 {
		return PaybackIn(conversionCost / monthlySavings)
	}
	return NoPayback()
}

// Result is the output of one analysis. Treat it as immutable once built.
type Result struct {
	PetrolCostPerKm   float64 `json:"petrol_cost_per_km"`
	CNGCostPerKm      float64 `json:"cng_cost_per_km"`
	MonthlyPetrolCost float64 `json:"monthly_petrol_cost"`
	MonthlyCNGCost    float64 `json:"monthly_cng_cost"`
	MonthlySavings    float64 `json:"monthly_savings"`
	Payback           Payback `json:"payback_months"`
}

// Analyze runs the cost model over a scenario.
func Analyze(s Scenario) Result {
	petrol := CostPerKm(s.PetrolPrice, s.PetrolConsumption)
	cng := CostPerKm(s.CNGPrice, s.CNGConsumption)
	savings := MonthlySavings(s.DistancePerMonth, petrol, cng)
	return Result{
		PetrolCostPerKm:   petrol,
		CNGCostPerKm:      cng,
		MonthlyPetrolCost: s.DistancePerMonth * petrol,
		MonthlyCNGCost:    s.DistancePerMonth * cng,
		MonthlySavings:    savings,
		Payback:           PaybackMonths(s.ConversionCost, savings),
	}
}

// Recommendation classifies the result's payback period.
func (r Result) Recommendation() Recommendation {
	return Classify(r.Payback)
}
