// Package compare implements the compare_brackets core operation
// (spec.md §4.12, §6.2): given an income and a candidate deduction, report
// which federal and cantonal marginal brackets apply before and after the
// deduction, and whether either one changed. Grounded on
// internal/compare/engine.go in the teacher codebase -- the same
// before/after comparison shape, retargeted from scenario-vs-baseline
// retirement projections to bracket-vs-bracket tax schedule snapshots.
package compare

import (
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
	"github.com/taxglide/taxglide/internal/taxengine"
)

// Engine computes bracket comparisons against a fixed federal/cantonal
// evaluator pair.
type Engine struct {
	Federal  taxengine.FederalEvaluator
	Cantonal taxengine.CantonalEvaluator
}

// Compare returns the before/after federal and cantonal bracket snapshots
// for incomeFed/incomeSG against the same incomes reduced by deduction.
func (e Engine) Compare(incomeFed, incomeSG, deduction moneydec.Decimal) (domain.BracketComparison, error) {
	afterFed := moneydec.ClampNonNegative(incomeFed.Sub(deduction))
	afterSG := moneydec.ClampNonNegative(incomeSG.Sub(deduction))

	fedBefore, err := e.federalSnapshot(incomeFed)
	if err != nil {
		return domain.BracketComparison{}, err
	}
	fedAfter, err := e.federalSnapshot(afterFed)
	if err != nil {
		return domain.BracketComparison{}, err
	}

	cantonBefore, ok := e.Cantonal.Bracket(incomeSG)
	if !ok {
		return domain.BracketComparison{}, domain.NewError(domain.CalculationError, "no cantonal bracket found for income before deduction", nil)
	}
	cantonAfter, ok := e.Cantonal.Bracket(afterSG)
	if !ok {
		return domain.BracketComparison{}, domain.NewError(domain.CalculationError, "no cantonal bracket found for income after deduction", nil)
	}

	cantonBeforeSnap := cantonalSnapshot(cantonBefore)
	cantonAfterSnap := cantonalSnapshot(cantonAfter)

	return domain.BracketComparison{
		Federal: domain.ScheduleComparison{
			Before:  fedBefore,
			After:   fedAfter,
			Changed: !fedBefore.From.Equal(fedAfter.From),
		},
		Cantonal: domain.ScheduleComparison{
			Before:  cantonBeforeSnap,
			After:   cantonAfterSnap,
			Changed: !cantonBeforeSnap.From.Equal(cantonAfterSnap.From),
		},
	}, nil
}

func (e Engine) federalSnapshot(income moneydec.Decimal) (domain.BracketSnapshot, error) {
	seg, ok, err := e.Federal.Segment(income)
	if err != nil {
		return domain.BracketSnapshot{}, err
	}
	if !ok {
		return domain.BracketSnapshot{}, domain.NewError(domain.CalculationError, "no federal segment found for income", nil)
	}
	to := seg.To
	if seg.Unbounded {
		to = moneydec.Zero
	}
	return domain.BracketSnapshot{
		From:  seg.From,
		To:    to,
		Rate:  seg.Per100,
		Label: federalLabel(seg),
	}, nil
}

func cantonalSnapshot(b domain.CantonalBracket) domain.BracketSnapshot {
	return domain.BracketSnapshot{
		From:  b.Lower,
		To:    b.Upper(),
		Rate:  b.RatePercent,
		Label: "",
	}
}

func federalLabel(seg domain.FederalSegment) string {
	if seg.Unbounded {
		return "top bracket"
	}
	return ""
}
