// Package dto defines data transfer objects for the projection feature's HTTP transport layer.
//
// Rates arrive in percent form (15 means 15%) the way the presentation layer
// enters them and are normalized to fractions by the ToEntity methods.
package dto

import "treasury_backend/internal/feature/projection/domain/entity"

const percent = 100

// MarketReq describes the market path. Range checks beyond the transport
// bounds below are left to the domain so they surface as 422.
type MarketReq struct {
	InitialPrice       float64  `json:"initial_price"`
	StartGrowthPct     float64  `json:"start_growth_pct"`
	AsymptoteGrowthPct float64  `json:"asymptote_growth_pct"`
	SettleYears        float64  `json:"settle_years"`
	ResidualFraction   *float64 `json:"residual_fraction"` // defaults to 0.05
	InflationPct       float64  `json:"inflation_pct"`
	InflationIndexed   bool     `json:"inflation_indexed"`
	HorizonYears       int      `json:"horizon_years" binding:"lte=100"`
}

// ToEntity converts the request into fractional market parameters.
func (r MarketReq) ToEntity() entity.MarketParameters {
	eps := entity.DefaultResidualFraction
	if r.ResidualFraction != nil {
		eps = *r.ResidualFraction
	}
	return entity.MarketParameters{
		InitialPrice:        r.InitialPrice,
		StartGrowthRate:     r.StartGrowthPct / percent,
		AsymptoteGrowthRate: r.AsymptoteGrowthPct / percent,
		SettleYears:         r.SettleYears,
		ResidualFraction:    eps,
		InflationRate:       r.InflationPct / percent,
		InflationIndexed:    r.InflationIndexed,
		HorizonYears:        r.HorizonYears,
	}
}

// ParticipantReq describes a single participant's contribution plan.
type ParticipantReq struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	StartingHolding     float64 `json:"starting_holding"`
	StartMonth          int     `json:"start_month"`
	YieldPct            float64 `json:"yield_pct"`
	YieldFeePct         float64 `json:"yield_fee_pct"`
	ExchangeFeePct      float64 `json:"exchange_fee_pct"`
}

// ToEntity converts the request into fractional participant parameters.
func (r ParticipantReq) ToEntity() entity.ParticipantParameters {
	return entity.ParticipantParameters{
		MonthlyContribution: r.MonthlyContribution,
		StartingHolding:     r.StartingHolding,
		StartMonth:          r.StartMonth,
		YieldRate:           r.YieldPct / percent,
		YieldFee:            r.YieldFeePct / percent,
		ExchangeFee:         r.ExchangeFeePct / percent,
	}
}

// GrowthReq describes how the platform population grows over the horizon.
type GrowthReq struct {
	StartParticipants int    `json:"start_participants" binding:"lte=100000000"`
	EndParticipants   int    `json:"end_participants" binding:"lte=100000000"`
	Shape             string `json:"shape"` // linear or exponential, defaults to linear
}

// ToEntity converts the request into platform growth parameters.
func (r GrowthReq) ToEntity() entity.PlatformGrowthParameters {
	shape := entity.GrowthShape(r.Shape)
	if shape == "" {
		shape = entity.GrowthLinear
	}
	return entity.PlatformGrowthParameters{
		StartParticipants: r.StartParticipants,
		EndParticipants:   r.EndParticipants,
		Shape:             shape,
	}
}

// ParticipantProjectionReq is the body of POST /v1/projections/participant.
type ParticipantProjectionReq struct {
	Market      MarketReq      `json:"market"`
	Participant ParticipantReq `json:"participant"`
}

// CohortProjectionReq is the body of POST /v1/projections/cohorts.
type CohortProjectionReq struct {
	Growth      GrowthReq      `json:"growth"`
	Market      MarketReq      `json:"market"`
	Participant ParticipantReq `json:"participant"`
}

// PlatformProjectionReq is the body of POST /v1/projections/platform.
type PlatformProjectionReq struct {
	Growth           GrowthReq      `json:"growth"`
	Market           MarketReq      `json:"market"`
	Participant      ParticipantReq `json:"participant"`
	PlatformYieldPct float64        `json:"platform_yield_pct"`
}

// ToEntity converts the request into a normalized scenario.
func (r PlatformProjectionReq) ToEntity() entity.Scenario {
	return entity.Scenario{
		Growth:            r.Growth.ToEntity(),
		Market:            r.Market.ToEntity(),
		Participant:       r.Participant.ToEntity(),
		PlatformYieldRate: r.PlatformYieldPct / percent,
	}
}
