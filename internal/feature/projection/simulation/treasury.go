package simulation

import (
	"context"
	"fmt"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/domain/growth"
)

// CompoundTreasury reinvests each month's collected fees as platform working
// capital earning platformYieldRate (annual, fractional). Capital starts at
// zero; yield in month m is earned on the capital held at the start of m, so
// fees collected in m start compounding in m+1.
func CompoundTreasury(monthly []entity.PlatformMonthlySnapshot, platformYieldRate float64) []entity.PlatformTreasurySnapshot {
	rate := growth.MonthlyEquivalent(platformYieldRate)
	out := make([]entity.PlatformTreasurySnapshot, len(monthly))

	capital := 0.0
	for i, snap := range monthly {
		earned := capital * rate
		ending := capital + snap.TotalFee + earned
		out[i] = entity.PlatformTreasurySnapshot{
			PlatformMonthlySnapshot: snap,
			WorkingCapital:          capital,
			EarnedYield:             earned,
			EndingPrincipal:         ending,
			EndingPrincipalFiat:     ending * snap.Price,
		}
		capital = ending
	}
	return out
}

// SummarizePlatform condenses a treasury series.
func SummarizePlatform(treasury []entity.PlatformTreasurySnapshot, cohorts int) entity.PlatformSummary {
	s := entity.PlatformSummary{Months: len(treasury), Cohorts: cohorts}
	if len(treasury) == 0 {
		return s
	}
	for _, t := range treasury {
		s.TotalFeesCollected += t.TotalFee
		s.TotalYieldEarned += t.EarnedYield
	}
	last := treasury[len(treasury)-1]
	s.FinalParticipants = last.ActiveParticipants
	s.FinalPrincipal = last.EndingPrincipal
	s.FinalPrincipalFiat = last.EndingPrincipalFiat
	s.FinalParticipantHolding = last.ParticipantHolding
	s.FinalPrice = last.Price
	return s
}

// Project runs the whole pipeline for one scenario.
func Project(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cohorts, err := BuildCohortSet(ctx, s.Growth, s.Market, s.Participant)
	if err != nil {
		return nil, err
	}
	monthly, err := AggregateMonthly(cohorts)
	if err != nil {
		return nil, err
	}
	treasury := CompoundTreasury(monthly, s.PlatformYieldRate)
	for _, t := range treasury {
		if !finite(t.ParticipantHolding, t.TotalFee, t.EarnedYield, t.EndingPrincipal, t.EndingPrincipalFiat) {
			return nil, fmt.Errorf("%w: platform treasury at month %d", domain.ErrNumericOverflow, t.Month)
		}
	}
	summary := SummarizePlatform(treasury, len(cohorts))
	if !finite(summary.TotalFeesCollected, summary.TotalYieldEarned) {
		return nil, fmt.Errorf("%w: platform totals", domain.ErrNumericOverflow)
	}
	return &entity.PlatformProjection{
		Scenario: s,
		Treasury: treasury,
		Summary:  summary,
	}, nil
}
