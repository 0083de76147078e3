// Package domain defines domain-level errors for the projection feature.
package domain

import "errors"

// Precondition errors for projection runs.
// Every one of them is fatal: a run fails before producing any partial series.
var (
	// ErrInvalidHorizon indicates a horizon of zero or fewer years.
	ErrInvalidHorizon = errors.New("horizon must be positive")

	// ErrInvalidResidualFraction indicates a settling residual outside (0, 1).
	ErrInvalidResidualFraction = errors.New("residual fraction must be in (0, 1)")

	// ErrInvalidParameter indicates a rate, fee, price, amount or count that is
	// out of its allowed range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidGrowthShape indicates a growth shape other than linear or exponential.
	ErrInvalidGrowthShape = errors.New("unknown growth shape")

	// ErrSeriesLengthMismatch indicates cohorts whose snapshot series differ in length.
	ErrSeriesLengthMismatch = errors.New("cohort series lengths differ")

	// ErrNoCohorts indicates an aggregation request without any cohort.
	ErrNoCohorts = errors.New("no cohorts to aggregate")

	// ErrNumericOverflow indicates inputs whose projection leaves the float64 range.
	ErrNumericOverflow = errors.New("projection overflows numeric range")
)

// IsPrecondition reports whether err is one of the precondition errors above.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrInvalidHorizon) ||
		errors.Is(err, ErrInvalidResidualFraction) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidGrowthShape) ||
		errors.Is(err, ErrSeriesLengthMismatch) ||
		errors.Is(err, ErrNoCohorts) ||
		errors.Is(err, ErrNumericOverflow)
}
