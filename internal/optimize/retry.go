package optimize

import (
	"github.com/shopspring/decimal"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// ToleranceScheduleFor returns the ordered basis-point tolerances to try for
// a given baseline income, per the Open Question resolved in DESIGN.md.
// Wider incomes get wider tolerance steps because their bracket widths
// (and absolute CHF amounts) are proportionally larger.
func ToleranceScheduleFor(incomeAmount moneydec.Decimal) []int {
	switch {
	case incomeAmount.LessThan(decimal.NewFromInt(50_000)):
		return []int{5, 10, 20, 40}
	case incomeAmount.LessThan(decimal.NewFromInt(150_000)):
		return []int{10, 25, 50, 100}
	default:
		return []int{25, 50, 100, 200}
	}
}

// AdaptiveRetry evaluates the tolerance schedule in order, builds a sweet
// spot for each, and picks the winner (spec.md §4.9). A wider tolerance is
// preferred over a narrower one already tried when it meaningfully widens
// the plateau (more deduction utilised) without its sweet-spot ROI falling
// more than 1% below the current winner's.
func AdaptiveRetry(
	rows []domain.ScanRow,
	schedule []int,
	buildSweetSpot func(domain.PlateauReport) (domain.SweetSpot, error),
) (domain.Diagnostics, bool, error) {
	if len(schedule) == 0 {
		return domain.Diagnostics{}, false, domain.NewError(domain.CalculationError, "tolerance schedule must not be empty", nil)
	}

	var candidates []domain.ToleranceCandidate
	var first *domain.ToleranceCandidate
	var winner *domain.ToleranceCandidate
	retryUsed := false

	for _, bp := range schedule {
		plateau, err := DetectPlateau(rows, bp)
		if err != nil {
			continue
		}
		spot, err := buildSweetSpot(plateau)
		if err != nil {
			continue
		}

		// ROI of the scan row at the sweet-spot deduction (0 if no row has it).
		roiAtSpot := moneydec.Zero
		for _, r := range rows {
			if r.Deduction.Equal(spot.Deduction) {
				roiAtSpot = r.ROIPercent
				break
			}
		}

		cand := domain.ToleranceCandidate{
			ToleranceBp: bp,
			Plateau:     plateau,
			SweetSpot:   spot,
			Utilisation: plateau.MaxD.Sub(plateau.MinD),
			ROIAtSpot:   roiAtSpot,
		}
		candidates = append(candidates, cand)

		if first == nil {
			c := cand
			first = &c
			winner = &c
			continue
		}

		retryUsed = true
		if isBetterCandidate(cand, *winner) {
			c := cand
			winner = &c
		}
	}

	if winner == nil {
		return domain.Diagnostics{}, false, domain.NewError(domain.CalculationError, "no tolerance in schedule produced a usable plateau", nil)
	}

	reason := domain.ReasonFirstChoice
	roiImprovement := moneydec.Zero
	utilImprovement := moneydec.Zero
	if first != nil && winner.ToleranceBp != first.ToleranceBp {
		roiImprovement = winner.ROIAtSpot.Sub(first.ROIAtSpot)
		utilImprovement = winner.Utilisation.Sub(first.Utilisation)
		switch {
		case roiImprovement.GreaterThan(moneydec.Zero) && utilImprovement.GreaterThan(moneydec.Zero):
			reason = domain.ReasonBalancedImprovement
		case utilImprovement.GreaterThan(moneydec.Zero):
			reason = domain.ReasonUtilisationImprovement
		default:
			reason = domain.ReasonROIImprovement
		}
	}

	diag := domain.Diagnostics{
		Candidates:             candidates,
		WinningToleranceBp:     winner.ToleranceBp,
		ROIImprovement:         roiImprovement,
		UtilisationImprovement: utilImprovement,
		SelectionReason:        reason,
	}
	return diag, retryUsed, nil
}

// isBetterCandidate prefers a strictly wider plateau (more utilisation) as
// long as it does not give up meaningful ROI; ties favour the narrower
// (already-chosen) tolerance.
func isBetterCandidate(candidate, current domain.ToleranceCandidate) bool {
	widerPlateau := candidate.Utilisation.GreaterThan(current.Utilisation)
	roiFloor := current.ROIAtSpot.Mul(decimal.NewFromFloat(0.99))
	return widerPlateau && candidate.ROIAtSpot.GreaterThanOrEqual(roiFloor)
}
