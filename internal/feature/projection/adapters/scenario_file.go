package adapters

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"treasury_backend/internal/feature/projection/domain/entity"
)

// EnvPrefix prefixes environment overrides of scenario keys,
// e.g. PROJECTION_MARKET_HORIZON_YEARS.
const EnvPrefix = "PROJECTION"

// scenarioFile mirrors the on-disk scenario layout. Rates are in percent.
type scenarioFile struct {
	Growth struct {
		StartParticipants int    `mapstructure:"start_participants"`
		EndParticipants   int    `mapstructure:"end_participants"`
		Shape             string `mapstructure:"shape"`
	} `mapstructure:"growth"`
	Market struct {
		InitialPrice       float64 `mapstructure:"initial_price"`
		StartGrowthPct     float64 `mapstructure:"start_growth_pct"`
		AsymptoteGrowthPct float64 `mapstructure:"asymptote_growth_pct"`
		SettleYears        float64 `mapstructure:"settle_years"`
		ResidualFraction   float64 `mapstructure:"residual_fraction"`
		InflationPct       float64 `mapstructure:"inflation_pct"`
		InflationIndexed   bool    `mapstructure:"inflation_indexed"`
		HorizonYears       int     `mapstructure:"horizon_years"`
	} `mapstructure:"market"`
	Participant struct {
		MonthlyContribution float64 `mapstructure:"monthly_contribution"`
		StartingHolding     float64 `mapstructure:"starting_holding"`
		StartMonth          int     `mapstructure:"start_month"`
		YieldPct            float64 `mapstructure:"yield_pct"`
		YieldFeePct         float64 `mapstructure:"yield_fee_pct"`
		ExchangeFeePct      float64 `mapstructure:"exchange_fee_pct"`
	} `mapstructure:"participant"`
	PlatformYieldPct float64 `mapstructure:"platform_yield_pct"`
}

// LoadScenario reads a YAML, JSON or TOML scenario file, applies PROJECTION_*
// environment overrides and returns the validated, fraction-form scenario.
func LoadScenario(path string) (entity.Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("growth.shape", string(entity.GrowthLinear))
	v.SetDefault("market.residual_fraction", entity.DefaultResidualFraction)

	if err := v.ReadInConfig(); err != nil {
		return entity.Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var f scenarioFile
	if err := v.Unmarshal(&f); err != nil {
		return entity.Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}

	s := f.toEntity()
	if err := s.Validate(); err != nil {
		return entity.Scenario{}, err
	}
	return s, nil
}

func (f scenarioFile) toEntity() entity.Scenario {
	const pct = 100
	return entity.Scenario{
		Growth: entity.PlatformGrowthParameters{
			StartParticipants: f.Growth.StartParticipants,
			EndParticipants:   f.Growth.EndParticipants,
			Shape:             entity.GrowthShape(f.Growth.Shape),
		},
		Market: entity.MarketParameters{
			InitialPrice:        f.Market.InitialPrice,
			StartGrowthRate:     f.Market.StartGrowthPct / pct,
			AsymptoteGrowthRate: f.Market.AsymptoteGrowthPct / pct,
			SettleYears:         f.Market.SettleYears,
			ResidualFraction:    f.Market.ResidualFraction,
			InflationRate:       f.Market.InflationPct / pct,
			InflationIndexed:    f.Market.InflationIndexed,
			HorizonYears:        f.Market.HorizonYears,
		},
		Participant: entity.ParticipantParameters{
			MonthlyContribution: f.Participant.MonthlyContribution,
			StartingHolding:     f.Participant.StartingHolding,
			StartMonth:          f.Participant.StartMonth,
			YieldRate:           f.Participant.YieldPct / pct,
			YieldFee:            f.Participant.YieldFeePct / pct,
			ExchangeFee:         f.Participant.ExchangeFeePct / pct,
		},
		PlatformYieldRate: f.PlatformYieldPct / pct,
	}
}
