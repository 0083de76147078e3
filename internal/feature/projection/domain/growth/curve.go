// Package growth implements the time-varying price growth curve.
//
// The annual rate starts at a given value and approaches a long-run
// asymptote exponentially. The settling horizon and the residual fraction
// fix the time constant: after settleYears the remaining gap to the
// asymptote is residualFraction of the initial gap.
package growth

import "math"

const (
	minResidualFraction = 1e-6
	maxResidualFraction = 0.999999

	// MinAnnualRate is the floor applied before monthly conversion.
	// Rates at or below -100% have no real monthly equivalent, so anything
	// steeper is treated as -99.9%. This is an approximation, not an error.
	MinAnnualRate = -0.999
)

// AnnualRate returns the annualized growth rate after yearsSinceStart years.
// A non-positive settleYears means the asymptote applies from the start.
func AnnualRate(yearsSinceStart, startRate, asymptoteRate, settleYears, residualFraction float64) float64 {
	if settleYears <= 0 {
		return asymptoteRate
	}
	eps := math.Min(math.Max(residualFraction, minResidualFraction), maxResidualFraction)
	tau := -settleYears / math.Log(eps)
	// asymptote + (start-asymptote)*w, arranged so that w == 1 yields startRate exactly.
	w := math.Exp(-yearsSinceStart / tau)
	return asymptoteRate*(1-w) + startRate*w
}

// MonthlyEquivalent converts an annual rate into the monthly rate that
// compounds to it over twelve months.
func MonthlyEquivalent(annualRate float64) float64 {
	if annualRate < MinAnnualRate {
		annualRate = MinAnnualRate
	}
	return math.Pow(1+annualRate, 1.0/12) - 1
}
