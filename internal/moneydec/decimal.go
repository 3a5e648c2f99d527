// Package moneydec provides the fixed-precision decimal arithmetic and
// directed-rounding rules the tax kernel depends on. Nothing in this
// package ever touches float64: every tax-bearing value flows through
// github.com/shopspring/decimal, matching the convention set by
// internal/calculation/taxes.go in the teacher codebase this module is
// descended from.
package moneydec

import (
	"github.com/shopspring/decimal"
)

// Decimal is a re-export so call sites in this module read "moneydec.Decimal"
// rather than reaching into shopspring/decimal directly.
type Decimal = decimal.Decimal

// Zero and common steps used throughout the tax tables.
var (
	Zero      = decimal.Zero
	Hundred   = decimal.NewFromInt(100)
	FiveCents = decimal.NewFromFloat(0.05)
	OneCent   = decimal.NewFromFloat(0.01)
)

// RoundMode selects the directed-rounding rule applied by RoundTo.
type RoundMode int

const (
	RoundFloor RoundMode = iota
	RoundNearest
	RoundCeil
)

// RoundTo rounds d to the nearest multiple of step using mode. step must be
// strictly positive; a zero or negative step is a caller bug, reported
// through ErrZeroStep rather than left to panic inside shopspring/decimal's
// own Div.
func RoundTo(d Decimal, step Decimal, mode RoundMode) (Decimal, error) {
	if step.LessThanOrEqual(Zero) {
		return Decimal{}, ErrZeroStep
	}
	units := d.Div(step)
	var rounded Decimal
	switch mode {
	case RoundFloor:
		rounded = units.Floor()
	case RoundCeil:
		rounded = units.Ceil()
	case RoundNearest:
		rounded = roundHalfAwayFromZero(units)
	default:
		rounded = units.Floor()
	}
	return rounded.Mul(step), nil
}

// roundHalfAwayFromZero implements "nearest, ties away from zero" rounding
// for the unit-count produced inside RoundTo. shopspring/decimal's own
// Round() uses banker's rounding (ties to even), which does not match the
// "tax_round_to" semantics this package needs, so the tie-break is done
// explicitly here.
func roundHalfAwayFromZero(units Decimal) Decimal {
	if units.IsNegative() {
		return roundHalfAwayFromZero(units.Neg()).Neg()
	}
	floor := units.Floor()
	frac := units.Sub(floor)
	half := decimal.NewFromFloat(0.5)
	if frac.GreaterThanOrEqual(half) {
		return floor.Add(decimal.NewFromInt(1))
	}
	return floor
}

// CeilStep rounds d up to the next multiple of step. This is the "taxable
// step-ceiling" rule: federal taxable income is rounded up to the next 100
// before bracket lookup.
func CeilStep(d Decimal, step Decimal) (Decimal, error) {
	return RoundTo(d, step, RoundCeil)
}

// ESTVRound implements "ESTV rounding": the final federal tax amount is
// rounded down to the nearest 0.05.
func ESTVRound(d Decimal) (Decimal, error) {
	return RoundTo(d, FiveCents, RoundFloor)
}

// Clamp returns d bounded to [lo, hi]. Used for bracket-overlap computation
// and for clamping negative incomes/deductions to zero.
func Clamp(d, lo, hi Decimal) Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// ClampNonNegative returns d, or zero if d is negative.
func ClampNonNegative(d Decimal) Decimal {
	if d.LessThan(Zero) {
		return Zero
	}
	return d
}
