// Package simulation implements the cohort treasury projection pipeline:
// per-participant accumulation, cohort timeline and composition, cross-cohort
// aggregation and treasury compounding.
//
// Every function is pure. Series returned to callers are owned by them and
// are never touched again by this package.
package simulation

import (
	"fmt"
	"math"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/domain/growth"
)

// marketState is the process-wide state threaded from one month to the next.
type marketState struct {
	price           float64
	inflationFactor float64
}

// participantState is what one participant carries between months.
type participantState struct {
	holding     float64
	contributed float64
	joined      bool
}

// SimulateParticipant returns one snapshot per month of the horizon for a
// single participant.
func SimulateParticipant(market entity.MarketParameters, participant entity.ParticipantParameters) ([]entity.AccumulationSnapshot, error) {
	if err := market.Validate(); err != nil {
		return nil, err
	}
	if err := participant.Validate(); err != nil {
		return nil, err
	}
	return accumulate(market, participant)
}

// accumulate runs the monthly fold over validated inputs. It fails with
// ErrNumericOverflow as soon as a month leaves the float64 range.
func accumulate(market entity.MarketParameters, participant entity.ParticipantParameters) ([]entity.AccumulationSnapshot, error) {
	months := market.HorizonMonths()
	series := make([]entity.AccumulationSnapshot, months)

	monthlyInflation := growth.MonthlyEquivalent(market.InflationRate)
	monthlyYield := growth.MonthlyEquivalent(participant.YieldRate)

	ms := marketState{price: market.InitialPrice, inflationFactor: 1}
	ps := participantState{}
	fees := 0.0

	for m := 0; m < months; m++ {
		years := (float64(m) + 0.5) / entity.MonthsPerYear
		g := growth.MonthlyEquivalent(growth.AnnualRate(
			years,
			market.StartGrowthRate,
			market.AsymptoteGrowthRate,
			market.SettleYears,
			market.ResidualFraction,
		))

		if m < participant.StartMonth {
			series[m] = entity.AccumulationSnapshot{
				Month:             m,
				Price:             ms.price,
				MonthlyGrowthRate: g,
			}
		} else {
			series[m], ps = stepParticipant(m, g, ms, ps, participant, market.InflationIndexed, monthlyYield)
		}

		ms = marketState{
			price:           ms.price * (1 + g),
			inflationFactor: ms.inflationFactor * (1 + monthlyInflation),
		}

		row := series[m]
		fees += row.TotalFee()
		if !finite(row.Holding, row.Holding*row.Price, row.Contribution, row.CumulativeContribution, row.TotalFee(), fees, ms.price) {
			return nil, fmt.Errorf("%w: participant series at month %d", domain.ErrNumericOverflow, m)
		}
	}
	return series, nil
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// stepParticipant applies one month of yield and purchase for a participant
// who has already joined.
func stepParticipant(
	month int,
	growthRate float64,
	ms marketState,
	ps participantState,
	p entity.ParticipantParameters,
	indexed bool,
	monthlyYield float64,
) (entity.AccumulationSnapshot, participantState) {
	if !ps.joined {
		ps.holding = p.StartingHolding
		ps.joined = true
	}

	contribution := p.MonthlyContribution
	if indexed {
		contribution *= ms.inflationFactor
	}

	// Yield accrues on what was held before this month's purchase.
	grossYield := ps.holding * monthlyYield
	yieldFee := grossYield * p.YieldFee

	bought := contribution / ms.price
	exchangeFee := bought * p.ExchangeFee

	ps.holding += (grossYield - yieldFee) + (bought - exchangeFee)
	ps.contributed += contribution

	return entity.AccumulationSnapshot{
		Month:                  month,
		Price:                  ms.price,
		YieldFee:               yieldFee,
		ExchangeFee:            exchangeFee,
		Holding:                ps.holding,
		MonthlyGrowthRate:      growthRate,
		Contribution:           contribution,
		CumulativeContribution: ps.contributed,
	}, ps
}

// ProjectedEndPrice returns the price after the last month of a series has
// been compounded forward.
func ProjectedEndPrice(series []entity.AccumulationSnapshot) float64 {
	if len(series) == 0 {
		return 0
	}
	last := series[len(series)-1]
	return last.Price * (1 + last.MonthlyGrowthRate)
}

// SummarizeParticipant condenses a participant series.
func SummarizeParticipant(series []entity.AccumulationSnapshot) entity.ParticipantSummary {
	var s entity.ParticipantSummary
	if len(series) == 0 {
		return s
	}
	for _, snap := range series {
		s.TotalYieldFee += snap.YieldFee
		s.TotalExchangeFee += snap.ExchangeFee
	}
	last := series[len(series)-1]
	s.FinalHolding = last.Holding
	s.FinalPrice = last.Price
	s.FinalHoldingFiat = last.Holding * last.Price
	s.TotalContributed = last.CumulativeContribution
	s.ProjectedEndPrice = ProjectedEndPrice(series)
	return s
}
