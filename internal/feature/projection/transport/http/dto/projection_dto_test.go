package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"treasury_backend/internal/feature/projection/domain/entity"
)

func TestMarketReq_ToEntity(t *testing.T) {
	t.Parallel()

	eps := 0.2
	tests := []struct {
		name    string
		req     MarketReq
		wantEps float64
	}{
		{"default residual fraction", MarketReq{}, entity.DefaultResidualFraction},
		{"explicit residual fraction", MarketReq{ResidualFraction: &eps}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req
			req.InitialPrice = 65000
			req.StartGrowthPct = 45
			req.AsymptoteGrowthPct = 12
			req.InflationPct = 2.5
			req.HorizonYears = 10

			got := req.ToEntity()
			assert.Equal(t, 65000.0, got.InitialPrice)
			assert.InDelta(t, 0.45, got.StartGrowthRate, 1e-15)
			assert.InDelta(t, 0.12, got.AsymptoteGrowthRate, 1e-15)
			assert.InDelta(t, 0.025, got.InflationRate, 1e-15)
			assert.Equal(t, tt.wantEps, got.ResidualFraction)
			assert.Equal(t, 10, got.HorizonYears)
		})
	}
}

func TestPlatformProjectionReq_ToEntity(t *testing.T) {
	t.Parallel()

	req := PlatformProjectionReq{
		Growth:           GrowthReq{StartParticipants: 10, EndParticipants: 90},
		Participant:      ParticipantReq{MonthlyContribution: 250, StartMonth: 3, YieldPct: 5, YieldFeePct: 20, ExchangeFeePct: 1.5},
		PlatformYieldPct: 4,
	}
	s := req.ToEntity()

	assert.Equal(t, entity.GrowthLinear, s.Growth.Shape)
	assert.Equal(t, 90, s.Growth.EndParticipants)
	assert.Equal(t, 3, s.Participant.StartMonth)
	assert.InDelta(t, 0.05, s.Participant.YieldRate, 1e-15)
	assert.InDelta(t, 0.2, s.Participant.YieldFee, 1e-15)
	assert.InDelta(t, 0.015, s.Participant.ExchangeFee, 1e-15)
	assert.InDelta(t, 0.04, s.PlatformYieldRate, 1e-15)

	req.Growth.Shape = "exponential"
	assert.Equal(t, entity.GrowthExponential, req.ToEntity().Growth.Shape)
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1234.57, fiat(1234.5678))
	assert.Equal(t, 0.00384616, units(0.003846155))
	assert.Equal(t, 1.5, pct(0.015))
	assert.True(t, math.IsInf(fiat(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(units(math.NaN())))
}

func TestNewCohortProjectionRes(t *testing.T) {
	t.Parallel()

	cohorts := []entity.Cohort{
		{StartMonth: 0, Count: 3, Base: true, Series: []entity.AccumulationSnapshot{{Holding: 0.1}, {Holding: 0.123456789}}},
		{StartMonth: 1, Count: 2, Series: []entity.AccumulationSnapshot{{}, {Holding: 0.05}}},
	}

	without := NewCohortProjectionRes(cohorts, false)
	assert.Len(t, without.Cohorts, 2)
	assert.Equal(t, 0.12345679, without.Cohorts[0].FinalHolding)
	assert.True(t, without.Cohorts[0].Base)
	assert.Nil(t, without.Cohorts[0].Series)

	with := NewCohortProjectionRes(cohorts, true)
	assert.Len(t, with.Cohorts[1].Series, 2)
	assert.Equal(t, 0.05, with.Cohorts[1].Series[1].Holding)
}

func TestNewPlatformProjectionRes(t *testing.T) {
	t.Parallel()

	p := &entity.PlatformProjection{
		Treasury: []entity.PlatformTreasurySnapshot{{
			PlatformMonthlySnapshot: entity.PlatformMonthlySnapshot{Month: 0, Price: 65000.004, TotalFee: 0.000000015, ActiveParticipants: 7},
			EndingPrincipal:         0.000000015,
			EndingPrincipalFiat:     0.000975,
		}},
		Summary: entity.PlatformSummary{Months: 1, Cohorts: 2, FinalParticipants: 7, FinalPrice: 65000.004},
	}
	res := NewPlatformProjectionRes(p)

	assert.Len(t, res.Treasury, 1)
	row := res.Treasury[0]
	assert.Equal(t, 65000.0, row.Price)
	assert.Equal(t, 7, row.ActiveParticipants)
	assert.Equal(t, 0.00000002, row.TotalFee)
	assert.Equal(t, 0.0, row.EndingPrincipalFiat)
	assert.Equal(t, 7, res.Summary.FinalParticipants)
	assert.Equal(t, 65000.0, res.Summary.FinalPrice)
}
