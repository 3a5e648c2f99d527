package optimize

import (
	"fmt"

	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
	"github.com/taxglide/taxglide/internal/taxengine"
)

// sweetSpotBuilder closes over everything needed to turn a plateau into a
// full domain.SweetSpot: the kernel, the original (pre-deduction) income
// figures and filing status, and the baseline breakdown already computed by
// the caller.
type sweetSpotBuilder struct {
	kernel    taxengine.Kernel
	incomeSG  moneydec.Decimal
	incomeFed moneydec.Decimal
	status    domain.FilingStatus
	picks     []string
	skips     []string
	baseline  domain.TaxBreakdown
	rows      []domain.ScanRow
}

// BuildSweetSpot selects the right endpoint of the given plateau as the
// sweet spot (spec.md §4.10): the most deduction the taxpayer can use while
// staying within the plateau's ROI tolerance. It recomputes the full
// breakdown at that deduction, detects whether the federal bracket changed
// relative to baseline, and -- only when it did not -- offers a "100-nudge"
// suggestion: the smallest additional deduction (at most 100 CHF) that
// would push taxable federal income down exactly to the next-lower
// segment boundary.
func (b sweetSpotBuilder) BuildSweetSpot(plateau domain.PlateauReport) (domain.SweetSpot, error) {
	dVal := plateau.MaxD

	newSG := moneydec.ClampNonNegative(b.incomeSG.Sub(dVal))
	newFed := moneydec.ClampNonNegative(b.incomeFed.Sub(dVal))

	bd, err := b.kernel.Evaluate(newSG, newFed, b.status, b.picks, b.skips)
	if err != nil {
		return domain.SweetSpot{}, err
	}

	baseSeg, baseOK, err := b.kernel.Federal.Segment(b.incomeFed)
	if err != nil {
		return domain.SweetSpot{}, err
	}
	newSeg, newOK, err := b.kernel.Federal.Segment(newFed)
	if err != nil {
		return domain.SweetSpot{}, err
	}
	bracketChanged := baseOK && newOK && !baseSeg.From.Equal(newSeg.From)

	saved := b.baseline.Total.Sub(bd.Total)
	savedPercent := moneydec.Zero
	if b.baseline.Total.GreaterThan(moneydec.Zero) {
		savedPercent = saved.Div(b.baseline.Total).Mul(moneydec.Hundred)
	}

	_, applied, warnings := taxengine.ApplyMultipliers(bd.SGSimple, b.kernel.Muni, b.picks, b.skips)

	marginal := rowMarginalNear(b.rows, dVal)

	summary := domain.OptimizationSummary{
		ROIPercent:            plateau.ROIMaxPercent,
		PlateauWidthCHF:       plateau.MaxD.Sub(plateau.MinD),
		FederalBracketChanged: bracketChanged,
		MarginalRatePercent:   marginal,
	}

	var nudge *domain.FederalNudge
	if !bracketChanged && newOK && newSeg.From.GreaterThan(moneydec.Zero) {
		// Distance above the *lower* boundary of the current segment: the
		// additional deduction needed to push new_fed exactly down to the
		// next-lower segment boundary (spec.md §4.10, glossary "100-nudge").
		aboveLowerBound := newFed.Sub(newSeg.From)
		if aboveLowerBound.GreaterThan(moneydec.Zero) && aboveLowerBound.LessThanOrEqual(moneydec.Hundred) {
			nudgedFed := newSeg.From
			nudgedTax, err := b.kernel.Federal.Tax(nudgedFed)
			if err == nil {
				currentFedTax, err2 := b.kernel.Federal.Tax(newFed)
				if err2 == nil {
					saving := currentFedTax.Sub(nudgedTax)
					if saving.GreaterThan(moneydec.Zero) {
						nudge = &domain.FederalNudge{
							AdditionalDeduction: aboveLowerBound,
							FederalTaxSaving:    saving,
						}
					}
				}
			}
		}
	}

	explanation := fmt.Sprintf(
		"Deducting %s keeps ROI within the %dbp plateau around the observed peak ROI of %s%%, saving %s in total tax (%s%%).",
		dVal.StringFixed(2), plateau.ToleranceBp, plateau.ROIMaxPercent.StringFixed(2), saved.StringFixed(2), savedPercent.StringFixed(2),
	)

	return domain.SweetSpot{
		Deduction:          dVal,
		NewIncomeSG:        newSG,
		NewIncomeFed:       newFed,
		TotalTaxAtSpot:     bd.Total,
		FederalTaxAtSpot:   bd.Federal,
		SGTaxAtSpot:        bd.SGAfterMultipliers,
		BaselineTotalTax:   b.baseline.Total,
		BaselineFederalTax: b.baseline.Federal,
		BaselineSGTax:      b.baseline.SGAfterMultipliers,
		TaxSavedAbsolute:   saved,
		TaxSavedPercent:    savedPercent,
		Explanation:        explanation,
		IncomeDetails: domain.IncomeDetails{
			OriginalSG:  b.incomeSG,
			OriginalFed: b.incomeFed,
			AfterSG:     newSG,
			AfterFed:    newFed,
		},
		MultipliersApplied: domain.MultipliersApplied{
			Applied:  applied,
			Warnings: warnings,
		},
		OptimizationSummary:   summary,
		FederalBracketChanged: bracketChanged,
		FederalNudge:          nudge,
	}, nil
}

// rowMarginalNear returns the local marginal rate recorded on the scan row
// whose deduction equals the given one, or zero if no row has exactly that
// deduction or the row carries no such figure (include_marginal was false).
func rowMarginalNear(rows []domain.ScanRow, dVal moneydec.Decimal) moneydec.Decimal {
	for _, r := range rows {
		if r.Deduction.Equal(dVal) && r.LocalMarginalPercent != nil {
			return *r.LocalMarginalPercent
		}
	}
	return moneydec.Zero
}
