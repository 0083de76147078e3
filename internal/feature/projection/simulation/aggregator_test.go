package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
)

func cohortAt(t *testing.T, start, count int) entity.Cohort {
	t.Helper()

	p := testParticipant()
	p.StartMonth = start
	series, err := SimulateParticipant(testMarket(), p)
	require.NoError(t, err)
	return entity.Cohort{StartMonth: start, Count: count, Series: series}
}

func TestAggregateMonthly_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := cohortAt(t, 0, 40)
	b := cohortAt(t, 6, 15)

	ab, err := AggregateMonthly([]entity.Cohort{a, b})
	require.NoError(t, err)
	ba, err := AggregateMonthly([]entity.Cohort{b, a})
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestAggregateMonthly_UsesExplicitStartMonth(t *testing.T) {
	t.Parallel()

	// Cohorts out of order and with skipped months: slice position says
	// nothing about when a cohort joins.
	late := cohortAt(t, 20, 7)
	base := cohortAt(t, 0, 100)
	base.Base = true
	mid := cohortAt(t, 3, 0)

	monthly, err := AggregateMonthly([]entity.Cohort{late, mid, base})
	require.NoError(t, err)
	require.Len(t, monthly, 36)

	for m, snap := range monthly {
		assert.Equal(t, m, snap.Month)
		assert.Equal(t, base.Series[m].Price, snap.Price)
		if m < 20 {
			assert.Equal(t, 100, snap.ActiveParticipants, "month %d", m)
			assert.InDelta(t, 100*base.Series[m].ExchangeFee, snap.ExchangeFee, 1e-15)
		} else {
			assert.Equal(t, 107, snap.ActiveParticipants, "month %d", m)
			want := 100*base.Series[m].ExchangeFee + 7*late.Series[m].ExchangeFee
			assert.InDelta(t, want, snap.ExchangeFee, 1e-12)
		}
		assert.Equal(t, snap.YieldFee+snap.ExchangeFee, snap.TotalFee)
	}
}

func TestAggregateMonthly_ZeroCountsContributeNothing(t *testing.T) {
	t.Parallel()

	monthly, err := AggregateMonthly([]entity.Cohort{cohortAt(t, 0, 0), cohortAt(t, 5, 0)})
	require.NoError(t, err)
	for _, snap := range monthly {
		assert.Zero(t, snap.TotalFee)
		assert.Zero(t, snap.ActiveParticipants)
		assert.Zero(t, snap.ParticipantHolding)
		assert.Positive(t, snap.Price)
	}
}

func TestAggregateMonthly_Preconditions(t *testing.T) {
	t.Parallel()

	_, err := AggregateMonthly(nil)
	assert.ErrorIs(t, err, domain.ErrNoCohorts)

	short := cohortAt(t, 0, 1)
	short.Series = short.Series[:10]
	monthly, err := AggregateMonthly([]entity.Cohort{cohortAt(t, 0, 1), short})
	assert.ErrorIs(t, err, domain.ErrSeriesLengthMismatch)
	assert.Nil(t, monthly)
}
