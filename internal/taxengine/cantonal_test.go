package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

func simpleCanton() domain.Canton {
	return domain.Canton{
		Name:         "St. Gallen",
		Abbreviation: "SG",
		Brackets: []domain.CantonalBracket{
			{Lower: d("0"), Width: d("10000"), RatePercent: d("2")},
			{Lower: d("10000"), Width: d("20000"), RatePercent: d("5")},
			{Lower: d("30000"), Width: d("1000000"), RatePercent: d("8")},
		},
		Rounding: domain.RoundingPolicy{TaxRoundTo: d("0.05"), Scope: domain.ScopeAsOfficial},
	}
}

func TestCantonalEvaluator_BracketSum(t *testing.T) {
	e := CantonalEvaluator{Canton: simpleCanton()}
	tax, err := e.Tax(d("25000"))
	require.NoError(t, err)
	// 10000*2% + 15000*5% = 200 + 750 = 950
	assert.True(t, tax.Equal(d("950")), "got %s", tax)
}

func TestCantonalEvaluator_OverrideThresholdInclusive(t *testing.T) {
	canton := simpleCanton()
	canton.Override = &domain.CantonalOverride{Threshold: d("100000"), FlatPercent: d("10")}
	e := CantonalEvaluator{Canton: canton}
	tax, err := e.Tax(d("100000"))
	require.NoError(t, err)
	assert.True(t, tax.Equal(d("10000")), "override should trigger at income == threshold, got %s", tax)
}

func TestCantonalEvaluator_BracketAboveIncomeContributesZero(t *testing.T) {
	e := CantonalEvaluator{Canton: simpleCanton()}
	tax, err := e.Tax(d("5000"))
	require.NoError(t, err)
	assert.True(t, tax.Equal(d("100")), "got %s", tax)
}

func TestCantonalEvaluator_NegativeIncomeClamped(t *testing.T) {
	e := CantonalEvaluator{Canton: simpleCanton()}
	tax, err := e.Tax(d("-100"))
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
}
