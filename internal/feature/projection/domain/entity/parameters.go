// Package entity defines the domain models for the projection feature.
package entity

import (
	"fmt"
	"math"

	"treasury_backend/internal/feature/projection/domain"
)

// DefaultResidualFraction is the share of the initial growth-rate gap still
// left when the settling horizon elapses.
const DefaultResidualFraction = 0.05

// MonthsPerYear is the number of simulation steps per year.
const MonthsPerYear = 12

// MarketParameters describes the process-wide price and inflation path.
// All rates are fractional (0.15 = 15%).
type MarketParameters struct {
	InitialPrice        float64 `json:"initial_price"`         // Fiat per unit at month 0
	StartGrowthRate     float64 `json:"start_growth_rate"`     // Annual growth rate at t=0
	AsymptoteGrowthRate float64 `json:"asymptote_growth_rate"` // Long-run annual growth rate
	SettleYears         float64 `json:"settle_years"`          // Years to settle toward the asymptote
	ResidualFraction    float64 `json:"residual_fraction"`     // Remaining gap share at SettleYears
	InflationRate       float64 `json:"inflation_rate"`        // Annual inflation
	InflationIndexed    bool    `json:"inflation_indexed"`     // Scale contributions by inflation
	HorizonYears        int     `json:"horizon_years"`         // Projection length
}

// HorizonMonths returns the number of monthly steps in the projection.
func (m MarketParameters) HorizonMonths() int {
	return m.HorizonYears * MonthsPerYear
}

// Validate checks the market preconditions.
func (m MarketParameters) Validate() error {
	if m.HorizonYears <= 0 {
		return fmt.Errorf("%w: got %d years", domain.ErrInvalidHorizon, m.HorizonYears)
	}
	if !(m.ResidualFraction > 0 && m.ResidualFraction < 1) {
		return fmt.Errorf("%w: got %v", domain.ErrInvalidResidualFraction, m.ResidualFraction)
	}
	if !finitePositive(m.InitialPrice) {
		return fmt.Errorf("%w: initial price must be positive, got %v", domain.ErrInvalidParameter, m.InitialPrice)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"start growth rate", m.StartGrowthRate},
		{"asymptote growth rate", m.AsymptoteGrowthRate},
		{"settle years", m.SettleYears},
		{"inflation rate", m.InflationRate},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite", domain.ErrInvalidParameter, f.name)
		}
	}
	return nil
}

// ParticipantParameters describes one participant's savings plan.
type ParticipantParameters struct {
	MonthlyContribution float64 `json:"monthly_contribution"` // Fiat per month before indexing
	StartingHolding     float64 `json:"starting_holding"`     // Units held on joining
	StartMonth          int     `json:"start_month"`          // Month index the participant joins
	YieldRate           float64 `json:"yield_rate"`           // Annual yield on holdings
	YieldFee            float64 `json:"yield_fee"`            // Platform share of yield
	ExchangeFee         float64 `json:"exchange_fee"`         // Platform share of each purchase
}

// Validate checks the participant preconditions.
func (p ParticipantParameters) Validate() error {
	if p.StartMonth < 0 {
		return fmt.Errorf("%w: start month must be >= 0, got %d", domain.ErrInvalidParameter, p.StartMonth)
	}
	if !finiteNonNegative(p.MonthlyContribution) {
		return fmt.Errorf("%w: monthly contribution must be >= 0, got %v", domain.ErrInvalidParameter, p.MonthlyContribution)
	}
	if !finiteNonNegative(p.StartingHolding) {
		return fmt.Errorf("%w: starting holding must be >= 0, got %v", domain.ErrInvalidParameter, p.StartingHolding)
	}
	if !finiteNonNegative(p.YieldRate) {
		return fmt.Errorf("%w: yield rate must be >= 0, got %v", domain.ErrInvalidParameter, p.YieldRate)
	}
	if !isFraction(p.YieldFee) {
		return fmt.Errorf("%w: yield fee must be in [0, 1], got %v", domain.ErrInvalidParameter, p.YieldFee)
	}
	if !isFraction(p.ExchangeFee) {
		return fmt.Errorf("%w: exchange fee must be in [0, 1], got %v", domain.ErrInvalidParameter, p.ExchangeFee)
	}
	return nil
}

// GrowthShape selects how the platform population moves from start to end.
type GrowthShape string

const (
	GrowthLinear      GrowthShape = "linear"
	GrowthExponential GrowthShape = "exponential"
)

// PlatformGrowthParameters describes the platform population over the horizon.
type PlatformGrowthParameters struct {
	StartParticipants int         `json:"start_participants"`
	EndParticipants   int         `json:"end_participants"`
	Shape             GrowthShape `json:"shape"`
}

// Validate checks the population preconditions.
func (g PlatformGrowthParameters) Validate() error {
	if g.StartParticipants < 0 || g.EndParticipants < 0 {
		return fmt.Errorf("%w: participant counts must be >= 0, got start=%d end=%d",
			domain.ErrInvalidParameter, g.StartParticipants, g.EndParticipants)
	}
	switch g.Shape {
	case GrowthLinear, GrowthExponential:
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidGrowthShape, g.Shape)
	}
}

// Scenario bundles every input of a full platform projection.
type Scenario struct {
	Growth            PlatformGrowthParameters `json:"growth"`
	Market            MarketParameters         `json:"market"`
	Participant       ParticipantParameters    `json:"participant"`
	PlatformYieldRate float64                  `json:"platform_yield_rate"`
}

// Validate checks every part of the scenario.
func (s Scenario) Validate() error {
	if err := s.Market.Validate(); err != nil {
		return err
	}
	if err := s.Participant.Validate(); err != nil {
		return err
	}
	if err := s.Growth.Validate(); err != nil {
		return err
	}
	if !finiteNonNegative(s.PlatformYieldRate) {
		return fmt.Errorf("%w: platform yield rate must be >= 0, got %v", domain.ErrInvalidParameter, s.PlatformYieldRate)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func isFraction(v float64) bool {
	return v >= 0 && v <= 1
}
