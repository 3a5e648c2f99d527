package optimize

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/taxengine"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleFederalTable() domain.FederalTable {
	return domain.FederalTable{Segments: []domain.FederalSegment{
		{From: d("0"), To: d("14500"), BaseTaxAt: d("0"), Per100: d("0"), AtIncome: d("0")},
		{From: d("14500"), To: d("31600"), BaseTaxAt: d("0"), Per100: d("0.77"), AtIncome: d("14500")},
		{From: d("31600"), Unbounded: true, BaseTaxAt: d("131.67"), Per100: d("0.88"), AtIncome: d("31600")},
	}}
}

func sampleCanton() domain.Canton {
	return domain.Canton{
		Name: "St. Gallen",
		Brackets: []domain.CantonalBracket{
			{Lower: d("0"), Width: d("10000"), RatePercent: d("2")},
			{Lower: d("10000"), Width: d("20000"), RatePercent: d("5")},
			{Lower: d("30000"), Width: d("1000000"), RatePercent: d("8")},
		},
		Rounding: domain.RoundingPolicy{TaxRoundTo: d("0.05"), Scope: domain.ScopeAsOfficial},
	}
}

func sampleKernel() taxengine.Kernel {
	return taxengine.Kernel{
		Federal:  taxengine.FederalEvaluator{Table: sampleFederalTable()},
		Cantonal: taxengine.CantonalEvaluator{Canton: sampleCanton()},
		Muni: domain.Municipality{
			Name: "St. Gallen",
			Multipliers: []domain.Multiplier{
				{Code: "KANTON", Rate: d("1.05"), DefaultSelected: true},
				{Code: "GEMEINDE", Rate: d("1.48"), DefaultSelected: true},
			},
		},
	}
}

func TestScan_ProducesRowsAtEachStep(t *testing.T) {
	k := sampleKernel()
	rows, err := Scan(context.Background(), k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("5000"), d("1000"), false)
	require.NoError(t, err)
	assert.Len(t, rows, 6) // 0,1000,...,5000
	assert.True(t, rows[0].Deduction.IsZero())
	assert.True(t, rows[len(rows)-1].Deduction.Equal(d("5000")))
}

func TestScan_PartialFinalStep(t *testing.T) {
	k := sampleKernel()
	rows, err := Scan(context.Background(), k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("4500"), d("2000"), false)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.True(t, last.Deduction.Equal(d("4500")), "final row should clamp to max_deduction even if not an exact step multiple")
}

func TestScan_SavedIsMonotonicNonDecreasing(t *testing.T) {
	k := sampleKernel()
	rows, err := Scan(context.Background(), k, d("90000"), d("90000"), domain.FilingSingle, nil, nil, d("10000"), d("1000"), false)
	require.NoError(t, err)
	prev := d("-1")
	for _, r := range rows {
		assert.True(t, r.Saved.GreaterThanOrEqual(prev), "saved should not decrease as deduction grows")
		prev = r.Saved
	}
}

func TestScan_ZeroDeductionHasZeroROI(t *testing.T) {
	k := sampleKernel()
	rows, err := Scan(context.Background(), k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("1000"), d("500"), false)
	require.NoError(t, err)
	assert.True(t, rows[0].ROIPercent.IsZero())
}

func TestScan_RejectsNonPositiveStep(t *testing.T) {
	k := sampleKernel()
	_, err := Scan(context.Background(), k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("1000"), d("0"), false)
	require.Error(t, err)
}

func TestScan_RespectsCancelledContext(t *testing.T) {
	k := sampleKernel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("10000"), d("1000"), false)
	require.Error(t, err)
}

func TestScan_IncludeMarginalFillsEveryRow(t *testing.T) {
	k := sampleKernel()
	rows, err := Scan(context.Background(), k, d("80000"), d("80000"), domain.FilingSingle, nil, nil, d("3000"), d("1000"), true)
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotNil(t, r.LocalMarginalPercent)
	}
}
