package taxengine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// simpleFederalTable is a small 3-segment table good enough to exercise
// the lookup, step-ceiling, and rounding rules without needing the full
// reference configuration.
func simpleFederalTable() domain.FederalTable {
	return domain.FederalTable{Segments: []domain.FederalSegment{
		{From: d("0"), To: d("14500"), AtIncome: d("0"), BaseTaxAt: d("0"), Per100: d("0")},
		{From: d("14500"), To: d("31600"), AtIncome: d("14500"), BaseTaxAt: d("0"), Per100: d("0.77")},
		{From: d("31600"), To: d("0"), Unbounded: true, AtIncome: d("31600"), BaseTaxAt: d("131.67"), Per100: d("0.88")},
	}}
}

func TestFederalEvaluator_BelowThreshold(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	tax, err := e.Tax(d("10000"))
	require.NoError(t, err)
	assert.True(t, tax.IsZero(), "got %s", tax)
}

func TestFederalEvaluator_MidSegment(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	// 20000 -> ceil to 20000 (already a multiple of 100)
	tax, err := e.Tax(d("20000"))
	require.NoError(t, err)
	// (20000-14500)/100 * 0.77 = 55 * 0.77 = 42.35
	assert.True(t, tax.Equal(d("42.35")), "got %s", tax)
}

func TestFederalEvaluator_StepCeiling(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	a, err := e.Tax(d("20001"))
	require.NoError(t, err)
	b, err := e.Tax(d("20000.01"))
	require.NoError(t, err)
	// Both step-ceil to 20100, so results should match.
	c, err := e.Tax(d("20100"))
	require.NoError(t, err)
	assert.True(t, a.Equal(c))
	assert.True(t, b.Equal(c))
}

func TestFederalEvaluator_UnboundedFinalSegment(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	tax, err := e.Tax(d("1000000"))
	require.NoError(t, err)
	assert.True(t, tax.GreaterThan(d("0")))
}

func TestFederalEvaluator_BoundaryFallsInHigherSegment(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	// Exactly at a segment boundary: half-open on the right means 31600
	// belongs to the third segment, not the second.
	seg, ok, err := e.Segment(d("31600"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, seg.Unbounded)
}

func TestFederalEvaluator_NegativeIncomeClampedToZero(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	tax, err := e.Tax(d("-5000"))
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
}

func TestFederalEvaluator_MonotonicityInIncome(t *testing.T) {
	e := FederalEvaluator{Table: simpleFederalTable()}
	incomes := []string{"0", "5000", "14500", "20000", "31600", "50000", "100000"}
	var prev decimal.Decimal
	for i, s := range incomes {
		tax, err := e.Tax(d(s))
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, tax.GreaterThanOrEqual(prev), "tax should be non-decreasing at income %s", s)
		}
		prev = tax
	}
}
