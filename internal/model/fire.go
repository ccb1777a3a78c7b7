package model

import "math"

// ParamKey names one FIRE input. The values double as persisted JSON keys.
type ParamKey string

// FIRE input keys.
const (
	ParamMonthlyExpenses ParamKey = "monthlyExpenses"
	ParamCurrentAge      ParamKey = "currentAge"
	ParamRetirementAge   ParamKey = "retirementAge"
	ParamLifeExpectancy  ParamKey = "lifeExpectancy"
	ParamInflation       ParamKey = "inflation"
)

// FIREParameters are the inputs to the retirement projection.
type FIREParameters struct {
	MonthlyExpenses float64
	CurrentAge      float64
	RetirementAge   float64
	LifeExpectancy  float64
	Inflation       float64 // percent, e.g. 6.0
}

// DefaultFIREParameters returns the values used before the user edits anything.
func DefaultFIREParameters() FIREParameters {
	return FIREParameters{
		MonthlyExpenses: 16000,
		CurrentAge:      28,
		RetirementAge:   42,
		LifeExpectancy:  89,
		Inflation:       6.0,
	}
}

// Get returns the value stored under key.
func (p FIREParameters) Get(key ParamKey) (float64, bool) {
	switch key {
	case ParamMonthlyExpenses:
		return p.MonthlyExpenses, true
	case ParamCurrentAge:
		return p.CurrentAge, true
	case ParamRetirementAge:
		return p.RetirementAge, true
	case ParamLifeExpectancy:
		return p.LifeExpectancy, true
	case ParamInflation:
		return p.Inflation, true
	}
	return 0, false
}

// Set stores v under key. Unknown keys are ignored and reported as false.
func (p *FIREParameters) Set(key ParamKey, v float64) bool {
	switch key {
	case ParamMonthlyExpenses:
		p.MonthlyExpenses = v
	case ParamCurrentAge:
		p.CurrentAge = v
	case ParamRetirementAge:
		p.RetirementAge = v
	case ParamLifeExpectancy:
		p.LifeExpectancy = v
	case ParamInflation:
		p.Inflation = v
	default:
		return false
	}
	return true
}

// ParamSpec describes the input control for one FIRE parameter.
type ParamSpec struct {
	Key     ParamKey
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Integer bool
}

// ParamSpecs lists the FIRE inputs in display order.
var ParamSpecs = []ParamSpec{
	{Key: ParamMonthlyExpenses, Label: "Monthly expenses", Min: 1000, Max: 500000, Step: 500, Integer: true},
	{Key: ParamCurrentAge, Label: "Current age", Min: 18, Max: 80, Step: 1, Integer: true},
	{Key: ParamRetirementAge, Label: "Retirement age", Min: 18, Max: 100, Step: 1, Integer: true},
	{Key: ParamLifeExpectancy, Label: "Life expectancy", Min: 40, Max: 120, Step: 1, Integer: true},
	{Key: ParamInflation, Label: "Inflation", Min: 0, Max: 15, Step: 0.1},
}

// SpecFor returns the input spec for key.
func SpecFor(key ParamKey) (ParamSpec, bool) {
	for _, s := range ParamSpecs {
		if s.Key == key {
			return s, true
		}
	}
	return ParamSpec{}, false
}

// Clamp bounds v to the control's range and applies its precision:
// whole numbers for integer inputs, one decimal place otherwise.
// NaN is treated as zero before clamping.
func (s ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Min(s.Max, math.Max(s.Min, v))
	if s.Integer {
		return math.Round(v)
	}
	return math.Round(v*10) / 10
}

// FIREProjection is the derived retirement target.
type FIREProjection struct {
	YearsToRetire  float64 `json:"yearsToRetire"`
	AnnualExpenses float64 `json:"annualExpenses"`
	FutureExpenses float64 `json:"futureExpenses"`
	LeanFIRENumber float64 `json:"leanFireNumber"`
	FatFIRENumber  float64 `json:"fatFireNumber"`
	FIRENumber     float64 `json:"fireNumber"`
}
