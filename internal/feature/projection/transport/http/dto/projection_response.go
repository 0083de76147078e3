package dto

import (
	"math"

	"github.com/shopspring/decimal"

	"treasury_backend/internal/feature/projection/domain/entity"
)

const (
	unitPlaces = 8
	fiatPlaces = 2
	ratePlaces = 6
)

// round rounds v half away from zero to places decimal digits. Non-finite
// values pass through unchanged.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func units(v float64) float64 { return round(v, unitPlaces) }
func fiat(v float64) float64 { return round(v, fiatPlaces) }
func pct(v float64) float64 { return round(v*percent, ratePlaces) }

// ErrorRes is the body of every non-2xx projection response.
type ErrorRes struct {
	Error string `json:"error"`
}

// SnapshotRes is one month of a participant's accumulation series.
type SnapshotRes struct {
	Month                  int     `json:"month"`
	Price                  float64 `json:"price"`
	MonthlyGrowthPct       float64 `json:"monthly_growth_pct"`
	Contribution           float64 `json:"contribution"`
	CumulativeContribution float64 `json:"cumulative_contribution"`
	YieldFee               float64 `json:"yield_fee"`    // unit
	ExchangeFee            float64 `json:"exchange_fee"` // unit
	Holding                float64 `json:"holding"`      // unit
}

func newSnapshotRes(s entity.AccumulationSnapshot) SnapshotRes {
	return SnapshotRes{
		Month:                  s.Month,
		Price:                  fiat(s.Price),
		MonthlyGrowthPct:       pct(s.MonthlyGrowthRate),
		Contribution:           fiat(s.Contribution),
		CumulativeContribution: fiat(s.CumulativeContribution),
		YieldFee:               units(s.YieldFee),
		ExchangeFee:            units(s.ExchangeFee),
		Holding:                units(s.Holding),
	}
}

func newSeriesRes(series []entity.AccumulationSnapshot) []SnapshotRes {
	out := make([]SnapshotRes, 0, len(series))
	for _, s := range series {
		out = append(out, newSnapshotRes(s))
	}
	return out
}

// ParticipantSummaryRes condenses a participant series.
type ParticipantSummaryRes struct {
	FinalHolding      float64 `json:"final_holding"`
	FinalHoldingFiat  float64 `json:"final_holding_fiat"`
	TotalContributed  float64 `json:"total_contributed"`
	TotalYieldFee     float64 `json:"total_yield_fee"`
	TotalExchangeFee  float64 `json:"total_exchange_fee"`
	FinalPrice        float64 `json:"final_price"`
	ProjectedEndPrice float64 `json:"projected_end_price"`
}

// ParticipantProjectionRes is the body of a participant projection.
type ParticipantProjectionRes struct {
	Summary ParticipantSummaryRes `json:"summary"`
	Series  []SnapshotRes         `json:"series"`
}

// NewParticipantProjectionRes rounds a participant series and summary for output.
func NewParticipantProjectionRes(series []entity.AccumulationSnapshot, s entity.ParticipantSummary) ParticipantProjectionRes {
	return ParticipantProjectionRes{
		Summary: ParticipantSummaryRes{
			FinalHolding:      units(s.FinalHolding),
			FinalHoldingFiat:  fiat(s.FinalHoldingFiat),
			TotalContributed:  fiat(s.TotalContributed),
			TotalYieldFee:     units(s.TotalYieldFee),
			TotalExchangeFee:  units(s.TotalExchangeFee),
			FinalPrice:        fiat(s.FinalPrice),
			ProjectedEndPrice: fiat(s.ProjectedEndPrice),
		},
		Series: newSeriesRes(series),
	}
}

// CohortRes describes one cohort. Series is only populated on request.
type CohortRes struct {
	StartMonth   int           `json:"start_month"`
	Count        int           `json:"count"`
	Base         bool          `json:"base"`
	FinalHolding float64       `json:"final_holding"` // per participant, unit
	Series       []SnapshotRes `json:"series,omitempty"`
}

// CohortProjectionRes is the body of a cohort projection.
type CohortProjectionRes struct {
	Cohorts []CohortRes `json:"cohorts"`
}

// NewCohortProjectionRes describes each cohort, including its series when withSeries is set.
func NewCohortProjectionRes(cohorts []entity.Cohort, withSeries bool) CohortProjectionRes {
	out := make([]CohortRes, 0, len(cohorts))
	for _, c := range cohorts {
		res := CohortRes{StartMonth: c.StartMonth, Count: c.Count, Base: c.Base}
		if n := len(c.Series); n > 0 {
			res.FinalHolding = units(c.Series[n-1].Holding)
		}
		if withSeries {
			res.Series = newSeriesRes(c.Series)
		}
		out = append(out, res)
	}
	return CohortProjectionRes{Cohorts: out}
}

// TreasuryRowRes is one month of the platform treasury.
type TreasuryRowRes struct {
	Month               int     `json:"month"`
	Price               float64 `json:"price"`
	ActiveParticipants  int     `json:"active_participants"`
	ParticipantHolding  float64 `json:"participant_holding"`
	YieldFee            float64 `json:"yield_fee"`
	ExchangeFee         float64 `json:"exchange_fee"`
	TotalFee            float64 `json:"total_fee"`
	WorkingCapital      float64 `json:"working_capital"`
	EarnedYield         float64 `json:"earned_yield"`
	EndingPrincipal     float64 `json:"ending_principal"`
	EndingPrincipalFiat float64 `json:"ending_principal_fiat"`
}

// PlatformSummaryRes condenses a platform projection.
type PlatformSummaryRes struct {
	Months                  int     `json:"months"`
	Cohorts                 int     `json:"cohorts"`
	FinalParticipants       int     `json:"final_participants"`
	TotalFeesCollected      float64 `json:"total_fees_collected"`
	TotalYieldEarned        float64 `json:"total_yield_earned"`
	FinalPrincipal          float64 `json:"final_principal"`
	FinalPrincipalFiat      float64 `json:"final_principal_fiat"`
	FinalParticipantHolding float64 `json:"final_participant_holding"`
	FinalPrice              float64 `json:"final_price"`
}

// PlatformProjectionRes is the body of a platform projection.
type PlatformProjectionRes struct {
	Summary  PlatformSummaryRes `json:"summary"`
	Treasury []TreasuryRowRes   `json:"treasury"`
}

// NewPlatformProjectionRes rounds a platform projection for output.
func NewPlatformProjectionRes(p *entity.PlatformProjection) PlatformProjectionRes {
	rows := make([]TreasuryRowRes, 0, len(p.Treasury))
	for _, t := range p.Treasury {
		rows = append(rows, TreasuryRowRes{
			Month:               t.Month,
			Price:               fiat(t.Price),
			ActiveParticipants:  t.ActiveParticipants,
			ParticipantHolding:  units(t.ParticipantHolding),
			YieldFee:            units(t.YieldFee),
			ExchangeFee:         units(t.ExchangeFee),
			TotalFee:            units(t.TotalFee),
			WorkingCapital:      units(t.WorkingCapital),
			EarnedYield:         units(t.EarnedYield),
			EndingPrincipal:     units(t.EndingPrincipal),
			EndingPrincipalFiat: fiat(t.EndingPrincipalFiat),
		})
	}
	s := p.Summary
	return PlatformProjectionRes{
		Summary: PlatformSummaryRes{
			Months:                  s.Months,
			Cohorts:                 s.Cohorts,
			FinalParticipants:       s.FinalParticipants,
			TotalFeesCollected:      units(s.TotalFeesCollected),
			TotalYieldEarned:        units(s.TotalYieldEarned),
			FinalPrincipal:          units(s.FinalPrincipal),
			FinalPrincipalFiat:      fiat(s.FinalPrincipalFiat),
			FinalParticipantHolding: units(s.FinalParticipantHolding),
			FinalPrice:              fiat(s.FinalPrice),
		},
		Treasury: rows,
	}
}
