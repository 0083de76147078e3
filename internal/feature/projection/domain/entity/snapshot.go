package entity

// AccumulationSnapshot is one month of a participant series.
// Months before the participant joins carry zero fees, holding and
// contribution; Price and MonthlyGrowthRate always follow the global path.
type AccumulationSnapshot struct {
	Month                  int     `json:"month"`
	Price                  float64 `json:"price"`
	YieldFee               float64 `json:"yield_fee"`
	ExchangeFee            float64 `json:"exchange_fee"`
	Holding                float64 `json:"holding"`
	MonthlyGrowthRate      float64 `json:"monthly_growth_rate"`
	Contribution           float64 `json:"contribution"`
	CumulativeContribution float64 `json:"cumulative_contribution"`
}

// TotalFee returns the platform fees taken from this month, in units.
func (s AccumulationSnapshot) TotalFee() float64 {
	return s.YieldFee + s.ExchangeFee
}

// Cohort is the set of participants joining in the same month.
// Series always spans the full horizon regardless of StartMonth.
type Cohort struct {
	StartMonth int                    `json:"start_month"`
	Count      int                    `json:"count"`
	Base       bool                   `json:"base"`
	Series     []AccumulationSnapshot `json:"series"`
}

// PlatformMonthlySnapshot sums every joined cohort for one calendar month.
type PlatformMonthlySnapshot struct {
	Month              int     `json:"month"`
	Price              float64 `json:"price"`
	YieldFee           float64 `json:"yield_fee"`
	ExchangeFee        float64 `json:"exchange_fee"`
	TotalFee           float64 `json:"total_fee"`
	ActiveParticipants int     `json:"active_participants"`
	ParticipantHolding float64 `json:"participant_holding"`
}

// PlatformTreasurySnapshot adds the platform's compounding fee balance to a
// monthly snapshot. EndingPrincipal of month m is WorkingCapital of month m+1.
type PlatformTreasurySnapshot struct {
	PlatformMonthlySnapshot
	WorkingCapital      float64 `json:"working_capital"`
	EarnedYield         float64 `json:"earned_yield"`
	EndingPrincipal     float64 `json:"ending_principal"`
	EndingPrincipalFiat float64 `json:"ending_principal_fiat"`
}

// ParticipantSummary condenses a participant series.
type ParticipantSummary struct {
	FinalHolding      float64 `json:"final_holding"`
	FinalHoldingFiat  float64 `json:"final_holding_fiat"`
	TotalContributed  float64 `json:"total_contributed"`
	TotalYieldFee     float64 `json:"total_yield_fee"`
	TotalExchangeFee  float64 `json:"total_exchange_fee"`
	FinalPrice        float64 `json:"final_price"`
	ProjectedEndPrice float64 `json:"projected_end_price"`
}

// PlatformSummary condenses a treasury series.
type PlatformSummary struct {
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

// PlatformProjection is the full output of a scenario run.
type PlatformProjection struct {
	Scenario Scenario                   `json:"scenario"`
	Treasury []PlatformTreasurySnapshot `json:"treasury"`
	Summary  PlatformSummary            `json:"summary"`
}
