package optimize

import (
	"context"

	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
	"github.com/taxglide/taxglide/internal/taxengine"
)

// Options carries the optimise() core operation's input (spec.md §4.11,
// §6.2). RequestedToleranceBp is nil when the caller wants the adaptive
// schedule to run; a non-nil value pins the search to a single tolerance
// and skips adaptive retry.
type Options struct {
	IncomeSG             moneydec.Decimal
	IncomeFed            moneydec.Decimal
	Status               domain.FilingStatus
	Picks                []string
	Skips                []string
	MaxDeduction         moneydec.Decimal
	Step                 moneydec.Decimal
	RequestedToleranceBp *int
}

// Optimise is the top-level orchestrator tying together the scan producer,
// plateau detector, adaptive retry, and sweet-spot selector into a single
// OptimisationReport (spec.md §4.11). It is grounded on the
// generate-evaluate-select pipeline shape of
// internal/calculation/sensitivity_analysis.go in the teacher codebase,
// replacing that function's what-if parameter sweep with a deduction sweep
// and its scenario scoring with ROI/plateau scoring.
func Optimise(ctx context.Context, k taxengine.Kernel, opts Options) (domain.OptimisationReport, error) {
	if opts.IncomeSG.IsNegative() || opts.IncomeFed.IsNegative() {
		return domain.OptimisationReport{}, domain.NewError(domain.InvalidInput, "income must not be negative", nil)
	}
	if opts.MaxDeduction.LessThanOrEqual(moneydec.Zero) {
		return domain.OptimisationReport{}, domain.NewError(domain.InvalidInput, "max_deduction must be positive", nil)
	}
	if opts.Step.LessThanOrEqual(moneydec.Zero) {
		return domain.OptimisationReport{}, domain.NewError(domain.InvalidInput, "step must be positive", nil)
	}

	baseline, err := k.Evaluate(opts.IncomeSG, opts.IncomeFed, opts.Status, opts.Picks, opts.Skips)
	if err != nil {
		return domain.OptimisationReport{}, err
	}

	rows, err := Scan(ctx, k, opts.IncomeSG, opts.IncomeFed, opts.Status, opts.Picks, opts.Skips, opts.MaxDeduction, opts.Step, true)
	if err != nil {
		return domain.OptimisationReport{}, err
	}

	bestRate, err := bestRateOf(rows)
	if err != nil {
		return domain.OptimisationReport{}, err
	}

	builder := sweetSpotBuilder{
		kernel:    k,
		incomeSG:  opts.IncomeSG,
		incomeFed: opts.IncomeFed,
		status:    opts.Status,
		picks:     opts.Picks,
		skips:     opts.Skips,
		baseline:  baseline,
		rows:      rows,
	}

	// A zero (or already-untaxed) baseline has nothing for a deduction to
	// save: every row's saved/roi is 0, which would otherwise make the
	// whole scan range look like a qualifying plateau and send
	// BuildSweetSpot to plateau.MaxD -- "deduct the maximum, save nothing"
	// (spec.md §7, §8 boundary "income = 0"). Short-circuit to d* = 0
	// instead of running it through the plateau/adaptive-retry machinery.
	if baseline.Total.LessThanOrEqual(moneydec.Zero) {
		zeroPlateau := domain.PlateauReport{
			MinD:          moneydec.Zero,
			MaxD:          moneydec.Zero,
			ROIMinPercent: moneydec.Zero,
			ROIMaxPercent: moneydec.Zero,
			ToleranceBp:   0,
		}
		spot, err := builder.BuildSweetSpot(zeroPlateau)
		if err != nil {
			return domain.OptimisationReport{}, err
		}
		spot.Explanation = "Baseline tax is already zero; no deduction produces a tax saving."

		_, applied, warnings := taxengine.ApplyMultipliers(baseline.SGSimple, k.Muni, opts.Picks, opts.Skips)

		return domain.OptimisationReport{
			BaseTotal:         baseline.Total,
			BestRate:          bestRate,
			PlateauNearMaxROI: zeroPlateau,
			SweetSpot:         spot,
			FederalNudge:      spot.FederalNudge,
			AdaptiveRetryUsed: false,
			MultipliersApplied: domain.MultipliersApplied{
				Applied:  applied,
				Warnings: warnings,
			},
			ToleranceInfo: domain.ToleranceInfo{
				Requested: opts.RequestedToleranceBp,
				Schedule:  nil,
				WinningBp: 0,
				Reason:    domain.ReasonFirstChoice,
			},
		}, nil
	}

	var schedule []int
	pinned := opts.RequestedToleranceBp != nil
	if pinned {
		schedule = []int{*opts.RequestedToleranceBp}
	} else {
		pivot := opts.IncomeSG
		if opts.IncomeFed.GreaterThan(pivot) {
			pivot = opts.IncomeFed
		}
		schedule = ToleranceScheduleFor(pivot)
	}

	diag, retryUsed, err := AdaptiveRetry(rows, schedule, builder.BuildSweetSpot)
	if err != nil {
		return domain.OptimisationReport{}, err
	}
	if pinned {
		retryUsed = false
	}

	winning := diag.Candidates[len(diag.Candidates)-1]
	for _, c := range diag.Candidates {
		if c.ToleranceBp == diag.WinningToleranceBp {
			winning = c
			break
		}
	}

	toleranceInfo := domain.ToleranceInfo{
		Requested: opts.RequestedToleranceBp,
		Schedule:  schedule,
		WinningBp: diag.WinningToleranceBp,
		Reason:    diag.SelectionReason,
	}

	_, applied, warnings := taxengine.ApplyMultipliers(baseline.SGSimple, k.Muni, opts.Picks, opts.Skips)

	return domain.OptimisationReport{
		BaseTotal:         baseline.Total,
		BestRate:          bestRate,
		PlateauNearMaxROI: winning.Plateau,
		SweetSpot:         winning.SweetSpot,
		FederalNudge:      winning.SweetSpot.FederalNudge,
		AdaptiveRetryUsed: retryUsed,
		MultipliersApplied: domain.MultipliersApplied{
			Applied:  applied,
			Warnings: warnings,
		},
		ToleranceInfo: toleranceInfo,
	}, nil
}

// bestRateOf scans the rows (excluding d=0, where ROI is undefined) for the
// single highest-ROI row, reported alongside the conservative sweet spot so
// a caller can see the theoretical ceiling.
func bestRateOf(rows []domain.ScanRow) (domain.BestRate, error) {
	candidates := nonZeroDeductionRows(rows)
	if len(candidates) == 0 {
		return domain.BestRate{}, domain.NewError(domain.CalculationError, "no rows with positive deduction to evaluate", nil)
	}
	best := candidates[0]
	for _, r := range candidates[1:] {
		if r.ROIPercent.GreaterThan(best.ROIPercent) {
			best = r
		}
	}
	return domain.BestRate{
		Deduction:          best.Deduction,
		NewIncome:          best.NewIncome,
		Saved:              best.Saved,
		SavingsRatePercent: best.ROIPercent,
	}, nil
}
