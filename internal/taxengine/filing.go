package taxengine

import (
	"github.com/shopspring/decimal"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

var two = decimal.NewFromInt(2)

// Evaluator is the shape shared by FederalEvaluator.Tax and
// CantonalEvaluator.Tax: income in, tax out. UnderStatus wraps either one
// identically, matching spec.md §9's "model them as two concrete functions
// sharing a shape" guidance.
type Evaluator func(income moneydec.Decimal) (moneydec.Decimal, error)

// UnderStatus applies spec.md §4.5's filing-status adaptation. For single
// filing it evaluates directly. For joint filing it applies the
// Swiss-style splitting rule: the effective rate at half the combined
// income is charged against the full income.
func UnderStatus(income moneydec.Decimal, status domain.FilingStatus, eval Evaluator) (moneydec.Decimal, error) {
	if income.IsZero() {
		return moneydec.Zero, nil
	}
	switch status {
	case domain.FilingJoint:
		halfIncome := income.Div(two)
		taxAtHalf, err := eval(halfIncome)
		if err != nil {
			return moneydec.Decimal{}, err
		}
		rate := taxAtHalf.Div(halfIncome)
		return rate.Mul(income), nil
	default:
		return eval(income)
	}
}
