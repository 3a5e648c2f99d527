package taxengine

import (
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// CantonalEvaluator evaluates a canton's simple tax: either the flat-rate
// override (when income clears its threshold) or the sum of
// bracket-overlap amounts (spec.md §4.3).
type CantonalEvaluator struct {
	Canton domain.Canton
}

// Tax computes the simple cantonal tax (pre-multiplier) owed on income.
func (e CantonalEvaluator) Tax(income moneydec.Decimal) (moneydec.Decimal, error) {
	income = moneydec.ClampNonNegative(income)

	taxable := income
	if e.Canton.Rounding.Scope == domain.ScopeTaxableOnly || e.Canton.Rounding.Scope == domain.ScopeBoth {
		if e.Canton.Rounding.TaxableStep.GreaterThan(moneydec.Zero) {
			rounded, err := moneydec.CeilStep(income, e.Canton.Rounding.TaxableStep)
			if err != nil {
				return moneydec.Decimal{}, domain.NewError(domain.CalculationError, "step-ceiling cantonal taxable income", err)
			}
			taxable = rounded
		}
	}

	var raw moneydec.Decimal
	if ov := e.Canton.Override; ov != nil && taxable.GreaterThanOrEqual(ov.Threshold) {
		raw = taxable.Mul(ov.FlatPercent).Div(moneydec.Hundred)
	} else {
		raw = e.bracketSum(taxable)
	}

	if e.Canton.Rounding.Scope == domain.ScopeAsOfficial || e.Canton.Rounding.Scope == domain.ScopeBoth {
		if e.Canton.Rounding.TaxRoundTo.GreaterThan(moneydec.Zero) {
			rounded, err := moneydec.RoundTo(raw, e.Canton.Rounding.TaxRoundTo, moneydec.RoundFloor)
			if err != nil {
				return moneydec.Decimal{}, domain.NewError(domain.CalculationError, "rounding cantonal tax", err)
			}
			return rounded, nil
		}
	}
	return raw, nil
}

// Bracket returns the bracket covering income (the bracket whose
// [Lower, Upper) range contains it), used by compare_brackets to report
// which marginal bracket a taxpayer sits in before/after a deduction. The
// last bracket is treated as covering everything at or above its Lower
// bound, matching its role as the top marginal bracket.
func (e CantonalEvaluator) Bracket(income moneydec.Decimal) (domain.CantonalBracket, bool) {
	income = moneydec.ClampNonNegative(income)
	for i, b := range e.Canton.Brackets {
		if income.GreaterThanOrEqual(b.Lower) && (income.LessThan(b.Upper()) || i == len(e.Canton.Brackets)-1) {
			return b, true
		}
	}
	return domain.CantonalBracket{}, false
}

// bracketSum implements spec.md §4.3 step 2: for each bracket, the
// overlap between [0, income] and [Lower, Lower+Width) contributes
// overlap * RatePercent/100. No rounding of the overlap itself.
func (e CantonalEvaluator) bracketSum(income moneydec.Decimal) moneydec.Decimal {
	total := moneydec.Zero
	for _, b := range e.Canton.Brackets {
		if b.Lower.GreaterThanOrEqual(income) {
			continue
		}
		clamped := moneydec.Clamp(income, b.Lower, b.Upper())
		overlap := clamped.Sub(b.Lower)
		if overlap.GreaterThan(moneydec.Zero) {
			total = total.Add(overlap.Mul(b.RatePercent).Div(moneydec.Hundred))
		}
	}
	return total
}
