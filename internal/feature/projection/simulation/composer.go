package simulation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"treasury_backend/internal/feature/projection/domain/entity"
)

// BuildCohortSet returns the base cohort followed by one cohort per month of
// the horizon, 1+horizonMonths cohorts in total. Cohort i (i >= 1) joins at
// month i-1; its count may be zero.
//
// The participant template's StartMonth is ignored: the base cohort starts at
// month 0 and every monthly cohort starts at its own month.
//
// Cohort series are computed in parallel. The first failing cohort, or a
// cancelled ctx, stops the remaining work and fails the whole set.
func BuildCohortSet(
	ctx context.Context,
	g entity.PlatformGrowthParameters,
	market entity.MarketParameters,
	participant entity.ParticipantParameters,
) ([]entity.Cohort, error) {
	if err := market.Validate(); err != nil {
		return nil, err
	}
	participant.StartMonth = 0
	if err := participant.Validate(); err != nil {
		return nil, err
	}
	joiners, err := CohortTimeline(g, market.HorizonYears)
	if err != nil {
		return nil, err
	}

	cohorts := make([]entity.Cohort, 0, len(joiners)+1)
	cohorts = append(cohorts, entity.Cohort{StartMonth: 0, Count: g.StartParticipants, Base: true})
	for m, n := range joiners {
		cohorts = append(cohorts, entity.Cohort{StartMonth: m, Count: n})
	}

	// Each goroutine writes only its own slot.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range cohorts {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			p := participant
			p.StartMonth = cohorts[i].StartMonth
			series, err := accumulate(market, p)
			if err != nil {
				return fmt.Errorf("cohort starting at month %d: %w", p.StartMonth, err)
			}
			cohorts[i].Series = series
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return cohorts, nil
}
