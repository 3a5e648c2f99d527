// Package optimize implements the deduction-optimisation engine: the scan
// producer, plateau detector, adaptive tolerance retry, and sweet-spot
// selector (spec.md §4.7-§4.11). It is grounded on the iterative
// convergence style of internal/calculation/breakeven.go (binary search
// over a target) and internal/calculation/sensitivity_analysis.go
// (parameter-sweep generation) in the teacher codebase, retargeted from a
// multi-year projection search to a single-request ROI scan.
package optimize

import (
	"context"

	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
	"github.com/taxglide/taxglide/internal/taxengine"
)

// Scan produces a dense deduction -> (tax, ROI, bracket info) tabulation
// (spec.md §4.7). Rows are produced for d = 0, step, 2*step, ..., up to and
// including maxDeduction (the last row may fall short of a full step if
// maxDeduction is not an exact multiple of step).
func Scan(
	ctx context.Context,
	k taxengine.Kernel,
	incomeSG, incomeFed moneydec.Decimal,
	status domain.FilingStatus,
	picks, skips []string,
	maxDeduction, step moneydec.Decimal,
	includeMarginal bool,
) ([]domain.ScanRow, error) {
	if step.LessThanOrEqual(moneydec.Zero) {
		return nil, domain.NewError(domain.InvalidInput, "step must be positive", nil)
	}
	if maxDeduction.LessThan(moneydec.Zero) {
		return nil, domain.NewError(domain.InvalidInput, "max_deduction must not be negative", nil)
	}

	baseline, err := k.Evaluate(incomeSG, incomeFed, status, picks, skips)
	if err != nil {
		return nil, err
	}

	var rows []domain.ScanRow
	for dVal := moneydec.Zero; dVal.LessThanOrEqual(maxDeduction); dVal = nextStep(dVal, step, maxDeduction) {
		if err := ctx.Err(); err != nil {
			return nil, domain.NewError(domain.CalculationError, "scan cancelled", err)
		}

		row, err := evaluateRow(k, incomeSG, incomeFed, status, picks, skips, dVal, baseline.Total)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)

		if dVal.Equal(maxDeduction) {
			break
		}
	}

	if includeMarginal {
		if err := fillLocalMarginal(k, incomeSG, incomeFed, status, picks, skips, rows); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// nextStep advances d by step, clamping to maxDeduction so the final row
// always lands exactly on the ceiling the caller asked for.
func nextStep(dVal, step, maxDeduction moneydec.Decimal) moneydec.Decimal {
	next := dVal.Add(step)
	if next.GreaterThan(maxDeduction) {
		return maxDeduction
	}
	return next
}

func evaluateRow(
	k taxengine.Kernel,
	incomeSG, incomeFed moneydec.Decimal,
	status domain.FilingStatus,
	picks, skips []string,
	dVal moneydec.Decimal,
	baselineTotal moneydec.Decimal,
) (domain.ScanRow, error) {
	newSG := moneydec.ClampNonNegative(incomeSG.Sub(dVal))
	newFed := moneydec.ClampNonNegative(incomeFed.Sub(dVal))

	bd, err := k.Evaluate(newSG, newFed, status, picks, skips)
	if err != nil {
		return domain.ScanRow{}, err
	}

	saved := baselineTotal.Sub(bd.Total)
	roi := moneydec.Zero
	if dVal.GreaterThan(moneydec.Zero) {
		roi = saved.Div(dVal).Mul(moneydec.Hundred)
	}

	seg, ok, err := k.Federal.Segment(newFed)
	if err != nil {
		return domain.ScanRow{}, err
	}
	var segInfo domain.SegmentInfo
	if ok {
		to := seg.To
		if seg.Unbounded {
			to = moneydec.Zero
		}
		segInfo = domain.SegmentInfo{From: seg.From, To: to, Per100: seg.Per100}
	}

	newIncome := newSG
	if newFed.GreaterThan(newIncome) {
		newIncome = newFed
	}

	return domain.ScanRow{
		Deduction:               dVal,
		NewIncome:               newIncome,
		NewIncomeSG:             newSG,
		NewIncomeFed:            newFed,
		TotalTax:                bd.Total,
		Federal:                 bd.Federal,
		SGSimple:                bd.SGSimple,
		SGAfterMultipliers:      bd.SGAfterMultipliers,
		Saved:                   saved,
		ROIPercent:              roi,
		FederalSegmentAtThisRow: segInfo,
	}, nil
}

// fillLocalMarginal computes, for every row but the last, the local
// marginal rate via a forward difference against the tax at d+100
// (spec.md §4.7 step 5). At the last scan row it falls back to a backward
// difference against the previous row, because there is no d+100 row to
// look at -- the convention spec.md §9 leaves as an Open Question, resolved
// here as "backward at the boundary, forward everywhere else" (see
// DESIGN.md).
func fillLocalMarginal(
	k taxengine.Kernel,
	incomeSG, incomeFed moneydec.Decimal,
	status domain.FilingStatus,
	picks, skips []string,
	rows []domain.ScanRow,
) error {
	for i := range rows {
		if i < len(rows)-1 {
			// Forward difference: need tax at d+100 relative to this row's
			// deduction, evaluated fresh (100 need not equal the scan step).
			dPlus := rows[i].Deduction.Add(moneydec.Hundred)
			newSG := moneydec.ClampNonNegative(incomeSG.Sub(dPlus))
			newFed := moneydec.ClampNonNegative(incomeFed.Sub(dPlus))
			bd, err := k.Evaluate(newSG, newFed, status, picks, skips)
			if err != nil {
				return err
			}
			pct := rows[i].TotalTax.Sub(bd.Total).Div(moneydec.Hundred).Mul(moneydec.Hundred)
			rows[i].LocalMarginalPercent = ptr(pct)
			continue
		}
		// Last row: backward difference against the previous row, if any.
		if i == 0 {
			zero := moneydec.Zero
			rows[i].LocalMarginalPercent = &zero
			continue
		}
		prev := rows[i-1]
		deltaD := rows[i].Deduction.Sub(prev.Deduction)
		if deltaD.LessThanOrEqual(moneydec.Zero) {
			zero := moneydec.Zero
			rows[i].LocalMarginalPercent = &zero
			continue
		}
		pct := prev.TotalTax.Sub(rows[i].TotalTax).Div(deltaD).Mul(moneydec.Hundred)
		rows[i].LocalMarginalPercent = ptr(pct)
	}
	return nil
}

func ptr(d moneydec.Decimal) *moneydec.Decimal {
	return &d
}
