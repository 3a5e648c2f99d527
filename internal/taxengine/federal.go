// Package taxengine implements the tax evaluation kernel: the federal and
// cantonal evaluators, the multiplier engine, the filing-status adapter,
// and the composed tax kernel (spec.md §4.2-§4.6). It is grounded on the
// bracket-table evaluation style of internal/calculation/taxes.go in the
// teacher codebase, generalised from US federal/state brackets to the
// Swiss federal/cantonal model this module targets.
package taxengine

import (
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// FederalEvaluator evaluates the federal marginal-bracket table
// (spec.md §4.2).
type FederalEvaluator struct {
	Table domain.FederalTable
}

// Tax computes the federal tax owed on income, following spec.md §4.2:
// step-ceil to 100, locate the covering segment, compute the exact raw tax
// from the segment's anchor and marginal rate, then round down to 0.05.
// Income below the first segment's From is taxed at 0; any other income no
// segment covers is a CalculationError.
func (e FederalEvaluator) Tax(income moneydec.Decimal) (moneydec.Decimal, error) {
	income = moneydec.ClampNonNegative(income)

	i, err := moneydec.CeilStep(income, moneydec.Hundred)
	if err != nil {
		return moneydec.Decimal{}, domain.NewError(domain.CalculationError, "step-ceiling federal income", err)
	}

	seg, ok := e.Table.Lookup(i)
	if !ok {
		if len(e.Table.Segments) > 0 && i.LessThan(e.Table.Segments[0].From) {
			return moneydec.Zero, nil
		}
		return moneydec.Decimal{}, domain.NewError(domain.CalculationError, "no federal segment covers income", nil)
	}

	units := i.Sub(seg.AtIncome).Div(moneydec.Hundred)
	raw := seg.BaseTaxAt.Add(units.Mul(seg.Per100))

	rounded, err := moneydec.ESTVRound(raw)
	if err != nil {
		return moneydec.Decimal{}, domain.NewError(domain.CalculationError, "rounding federal tax", err)
	}
	return rounded, nil
}

// Segment returns the federal segment covering ceil_to(income, 100), used
// by the scan producer (spec.md §4.7 step 4) and by bracket-change
// detection (spec.md §4.10).
func (e FederalEvaluator) Segment(income moneydec.Decimal) (domain.FederalSegment, bool, error) {
	income = moneydec.ClampNonNegative(income)
	i, err := moneydec.CeilStep(income, moneydec.Hundred)
	if err != nil {
		return domain.FederalSegment{}, false, domain.NewError(domain.CalculationError, "step-ceiling federal income", err)
	}
	seg, ok := e.Table.Lookup(i)
	return seg, ok, nil
}
