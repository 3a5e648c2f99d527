package taxengine

import (
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// Kernel composes the federal evaluator, cantonal evaluator, and a
// municipality's multipliers into a single callable: income(s) -> tax
// breakdown (spec.md §4.6).
type Kernel struct {
	Federal  FederalEvaluator
	Cantonal CantonalEvaluator
	Muni     domain.Municipality
}

// Evaluate computes the full TaxBreakdown for a pair of incomes. incomeSG
// and incomeFed are normally equal (a single combined income) but may
// differ when a caller models SG and federal income bases separately.
func (k Kernel) Evaluate(incomeSG, incomeFed moneydec.Decimal, status domain.FilingStatus, picks, skips []string) (domain.TaxBreakdown, error) {
	federal, err := UnderStatus(incomeFed, status, k.Federal.Tax)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}

	sgSimple, err := UnderStatus(incomeSG, status, k.Cantonal.Tax)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}

	sgAfter, applied, warnings := ApplyMultipliers(sgSimple, k.Muni, picks, skips)
	total := federal.Add(sgAfter)

	denom := incomeSG
	if incomeFed.GreaterThan(denom) {
		denom = incomeFed
	}
	avgRate := moneydec.Zero
	if denom.GreaterThan(moneydec.Zero) {
		avgRate = total.Div(denom)
	}

	seg, ok, err := k.Federal.Segment(incomeFed)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	marginalFedPer100 := moneydec.Zero
	if ok {
		marginalFedPer100 = seg.Per100.Div(moneydec.Hundred)
	}

	marginalTotal, err := k.marginalTotal(incomeSG, incomeFed, status, picks, skips, total)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}

	return domain.TaxBreakdown{
		Federal:               federal,
		SGSimple:              sgSimple,
		SGAfterMultipliers:    sgAfter,
		Total:                 total,
		AvgRate:               avgRate,
		MarginalTotal:         marginalTotal,
		MarginalFederalPer100: marginalFedPer100,
		PicksApplied:          applied,
		Warnings:              warnings,
	}, nil
}

// marginalTotal computes the finite-difference marginal total tax rate:
// (total(income+100) - total(income)) / 100, expressed as a fraction
// (spec.md §4.6).
func (k Kernel) marginalTotal(incomeSG, incomeFed moneydec.Decimal, status domain.FilingStatus, picks, skips []string, totalAtIncome moneydec.Decimal) (moneydec.Decimal, error) {
	federalUp, err := UnderStatus(incomeFed.Add(moneydec.Hundred), status, k.Federal.Tax)
	if err != nil {
		return moneydec.Decimal{}, err
	}
	sgSimpleUp, err := UnderStatus(incomeSG.Add(moneydec.Hundred), status, k.Cantonal.Tax)
	if err != nil {
		return moneydec.Decimal{}, err
	}
	sgAfterUp, _, _ := ApplyMultipliers(sgSimpleUp, k.Muni, picks, skips)
	totalUp := federalUp.Add(sgAfterUp)

	return totalUp.Sub(totalAtIncome).Div(moneydec.Hundred), nil
}
