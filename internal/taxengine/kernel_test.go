package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

func sampleKernel() Kernel {
	return Kernel{
		Federal:  FederalEvaluator{Table: simpleFederalTable()},
		Cantonal: CantonalEvaluator{Canton: simpleCanton()},
		Muni:     sampleMunicipality(),
	}
}

func TestKernel_Evaluate_Additivity(t *testing.T) {
	k := sampleKernel()
	bd, err := k.Evaluate(d("50000"), d("50000"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	assert.True(t, bd.Total.Equal(bd.Federal.Add(bd.SGAfterMultipliers)), "total must equal federal + sg_after_multipliers")
}

func TestKernel_Evaluate_RateBounds(t *testing.T) {
	k := sampleKernel()
	bd, err := k.Evaluate(d("80000"), d("80000"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	assert.True(t, bd.AvgRate.GreaterThanOrEqual(d("0")))
	assert.True(t, bd.AvgRate.LessThanOrEqual(d("0.35")))
	assert.True(t, bd.MarginalTotal.GreaterThanOrEqual(d("0")))
	assert.True(t, bd.MarginalTotal.LessThanOrEqual(d("0.50")))
}

func TestKernel_Evaluate_ZeroIncome(t *testing.T) {
	k := sampleKernel()
	bd, err := k.Evaluate(d("0"), d("0"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	assert.True(t, bd.Total.IsZero())
	assert.True(t, bd.AvgRate.IsZero())
}

func TestKernel_Evaluate_MonotonicityInIncome(t *testing.T) {
	k := sampleKernel()
	prevTotal := d("-1")
	for _, inc := range []string{"0", "10000", "30000", "60000", "90000"} {
		bd, err := k.Evaluate(d(inc), d(inc), domain.FilingSingle, nil, nil)
		require.NoError(t, err)
		assert.True(t, bd.Total.GreaterThanOrEqual(prevTotal), "total should be non-decreasing at income %s", inc)
		prevTotal = bd.Total
	}
}

func TestKernel_Evaluate_Progressivity(t *testing.T) {
	k := sampleKernel()
	low, err := k.Evaluate(d("30000"), d("30000"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	high, err := k.Evaluate(d("90000"), d("90000"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	assert.True(t, high.AvgRate.GreaterThanOrEqual(low.AvgRate))
}

func TestKernel_Evaluate_FilingStatusIdentity(t *testing.T) {
	k := sampleKernel()
	a, err := k.Evaluate(d("60000"), d("60000"), domain.FilingSingle, nil, nil)
	require.NoError(t, err)
	b, err := k.Evaluate(d("60000"), d("60000"), "", nil, nil)
	require.NoError(t, err)
	assert.True(t, a.Total.Equal(b.Total), "unset filing status should behave like single")
}
