package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
)

const scenarioYAML = `
growth:
  start_participants: 500
  end_participants: 5000
  shape: exponential
market:
  initial_price: 65000
  start_growth_pct: 45
  asymptote_growth_pct: 12
  settle_years: 8
  inflation_pct: 2.5
  inflation_indexed: true
  horizon_years: 10
participant:
  monthly_contribution: 250
  yield_pct: 5
  yield_fee_pct: 20
  exchange_fee_pct: 1.5
platform_yield_pct: 4
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadScenario_YAML(t *testing.T) {
	s, err := LoadScenario(writeFile(t, "scenario.yaml", scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, entity.GrowthExponential, s.Growth.Shape)
	assert.Equal(t, 5000, s.Growth.EndParticipants)
	assert.Equal(t, 65000.0, s.Market.InitialPrice)
	assert.InDelta(t, 0.45, s.Market.StartGrowthRate, 1e-15)
	assert.InDelta(t, 0.025, s.Market.InflationRate, 1e-15)
	assert.True(t, s.Market.InflationIndexed)
	assert.Equal(t, entity.DefaultResidualFraction, s.Market.ResidualFraction)
	assert.InDelta(t, 0.015, s.Participant.ExchangeFee, 1e-15)
	assert.InDelta(t, 0.04, s.PlatformYieldRate, 1e-15)
}

func TestLoadScenario_JSONDefaults(t *testing.T) {
	path := writeFile(t, "scenario.json", `{"market":{"initial_price":100,"horizon_years":2},"participant":{"monthly_contribution":10}}`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, entity.GrowthLinear, s.Growth.Shape)
	assert.Equal(t, entity.DefaultResidualFraction, s.Market.ResidualFraction)
	assert.Equal(t, 2, s.Market.HorizonYears)
}

func TestLoadScenario_EnvOverride(t *testing.T) {
	t.Setenv("PROJECTION_MARKET_HORIZON_YEARS", "3")

	s, err := LoadScenario(writeFile(t, "scenario.yaml", scenarioYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Market.HorizonYears)
}

func TestLoadScenario_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadScenario(writeFile(t, "bad.toml", `[market]
initial_price = 100
horizon_years = 0
`))
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
}
