package simulation

import (
	"fmt"
	"math"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
)

// CohortTimeline returns the number of participants joining in each month of
// the horizon. The starting population is not counted: month 0 has no new
// joiners, and the sum over all months is the net growth (never negative,
// since shrinking populations are clamped to zero joiners).
//
// Cumulative counts are rounded to whole participants before differencing.
func CohortTimeline(g entity.PlatformGrowthParameters, horizonYears int) ([]int, error) {
	if horizonYears <= 0 {
		return nil, fmt.Errorf("%w: got %d years", domain.ErrInvalidHorizon, horizonYears)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	months := horizonYears * entity.MonthsPerYear
	cumulative := cumulativeParticipants(g, months)

	joiners := make([]int, months)
	prev := g.StartParticipants
	for i, c := range cumulative {
		if d := c - prev; d > 0 {
			joiners[i] = d
		}
		prev = c
	}
	return joiners, nil
}

// cumulativeParticipants returns the platform population at each step.
func cumulativeParticipants(g entity.PlatformGrowthParameters, months int) []int {
	steps := months - 1
	start := float64(g.StartParticipants)
	end := float64(g.EndParticipants)

	out := make([]int, months)
	if steps <= 0 {
		out[0] = g.StartParticipants
		return out
	}

	// An exponential path from zero has no defined ratio; fall back to linear.
	if g.Shape == entity.GrowthExponential && g.StartParticipants > 0 {
		r := math.Pow(end/start, 1/float64(steps))
		for i := range out {
			out[i] = int(math.Round(start * math.Pow(r, float64(i))))
		}
		out[steps] = g.EndParticipants
		return out
	}

	for i := range out {
		out[i] = int(math.Round(start + (end-start)*float64(i)/float64(steps)))
	}
	return out
}
