package simulation

import (
	"fmt"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
)

// AggregateMonthly sums the count-weighted fees and holdings of every cohort
// that has joined by each month. A cohort counts from its StartMonth on,
// wherever it sits in the slice.
//
// The reference price is taken from the base cohort, or from the first
// cohort when none is flagged; every series follows the same price path.
func AggregateMonthly(cohorts []entity.Cohort) ([]entity.PlatformMonthlySnapshot, error) {
	if len(cohorts) == 0 {
		return nil, domain.ErrNoCohorts
	}
	months := len(cohorts[0].Series)
	ref := 0
	for i, c := range cohorts {
		if len(c.Series) != months {
			return nil, fmt.Errorf("%w: cohort %d has %d months, cohort 0 has %d",
				domain.ErrSeriesLengthMismatch, i, len(c.Series), months)
		}
		if c.Base && !cohorts[ref].Base {
			ref = i
		}
	}

	out := make([]entity.PlatformMonthlySnapshot, months)
	for m := 0; m < months; m++ {
		snap := entity.PlatformMonthlySnapshot{
			Month: m,
			Price: cohorts[ref].Series[m].Price,
		}
		for _, c := range cohorts {
			if m < c.StartMonth {
				continue
			}
			n := float64(c.Count)
			s := c.Series[m]
			snap.YieldFee += n * s.YieldFee
			snap.ExchangeFee += n * s.ExchangeFee
			snap.ParticipantHolding += n * s.Holding
			snap.ActiveParticipants += c.Count
		}
		snap.TotalFee = snap.YieldFee + snap.ExchangeFee
		out[m] = snap
	}
	return out, nil
}
