package moneydec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo_Floor(t *testing.T) {
	got, err := RoundTo(decimal.NewFromFloat(123.49), Hundred, RoundFloor)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)
}

func TestRoundTo_Ceil(t *testing.T) {
	got, err := RoundTo(decimal.NewFromFloat(100.01), Hundred, RoundCeil)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(200)), "got %s", got)
}

func TestRoundTo_CeilExactMultipleUnchanged(t *testing.T) {
	got, err := RoundTo(decimal.NewFromInt(200), Hundred, RoundCeil)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(200)), "got %s", got)
}

func TestRoundTo_NearestTiesAwayFromZero(t *testing.T) {
	got, err := RoundTo(decimal.NewFromFloat(0.125), FiveCents, RoundNearest)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.15)), "got %s", got)
}

func TestRoundTo_ZeroStepIsError(t *testing.T) {
	_, err := RoundTo(decimal.NewFromInt(100), Zero, RoundFloor)
	assert.ErrorIs(t, err, ErrZeroStep)
}

func TestESTVRound_AlwaysDown(t *testing.T) {
	got, err := ESTVRound(decimal.NewFromFloat(2899.5999))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(2899.55)), "got %s", got)
}

func TestESTVRound_Idempotent(t *testing.T) {
	once, err := ESTVRound(decimal.NewFromFloat(1234.567))
	require.NoError(t, err)
	twice, err := ESTVRound(once)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestCeilStep_Idempotent(t *testing.T) {
	once, err := CeilStep(decimal.NewFromFloat(74999.01), Hundred)
	require.NoError(t, err)
	twice, err := CeilStep(once, Hundred)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestClamp(t *testing.T) {
	lo, hi := decimal.NewFromInt(0), decimal.NewFromInt(100)
	assert.True(t, Clamp(decimal.NewFromInt(-5), lo, hi).Equal(lo))
	assert.True(t, Clamp(decimal.NewFromInt(150), lo, hi).Equal(hi))
	assert.True(t, Clamp(decimal.NewFromInt(50), lo, hi).Equal(decimal.NewFromInt(50)))
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(decimal.NewFromInt(-10)).Equal(Zero))
	assert.True(t, ClampNonNegative(decimal.NewFromInt(10)).Equal(decimal.NewFromInt(10)))
}
