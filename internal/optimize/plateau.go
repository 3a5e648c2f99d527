package optimize

import (
	"github.com/shopspring/decimal"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// DetectPlateau finds the contiguous range of scan rows, anchored at the
// peak ROI row, whose ROI lies within toleranceBp basis points of the
// maximum observed ROI (spec.md §4.8). Rows with deduction 0 are excluded
// from the ROI-maximisation search since ROI is undefined (division by
// zero) at d=0.
//
// toleranceBp is an absolute tolerance expressed in basis points of ROI
// (1 bp = 0.01 percentage point): a row qualifies when
// roi >= maxROI - toleranceBp/100, per spec.md §4.8. Contiguity is
// enforced by walking outward from the peak row in both directions and
// stopping at the first row that falls below threshold, rather than
// taking the min/max deduction over every qualifying row regardless of
// position -- the latter can over-report the plateau's width on a
// non-monotone scan where a qualifying row reappears past a dip.
func DetectPlateau(rows []domain.ScanRow, toleranceBp int) (domain.PlateauReport, error) {
	candidates := nonZeroDeductionRows(rows)
	if len(candidates) == 0 {
		return domain.PlateauReport{}, domain.NewError(domain.CalculationError, "no rows with positive deduction to scan for a plateau", nil)
	}

	peakIdx := 0
	maxROI := candidates[0].ROIPercent
	for i, r := range candidates[1:] {
		if r.ROIPercent.GreaterThan(maxROI) {
			maxROI = r.ROIPercent
			peakIdx = i + 1
		}
	}

	tolerance := decimal.NewFromInt(int64(toleranceBp)).Div(decimal.NewFromInt(100))
	threshold := maxROI.Sub(tolerance)

	lo, hi := peakIdx, peakIdx
	for lo > 0 && candidates[lo-1].ROIPercent.GreaterThanOrEqual(threshold) {
		lo--
	}
	for hi < len(candidates)-1 && candidates[hi+1].ROIPercent.GreaterThanOrEqual(threshold) {
		hi++
	}

	roiMin := candidates[lo].ROIPercent
	roiMax := candidates[lo].ROIPercent
	for _, r := range candidates[lo : hi+1] {
		if r.ROIPercent.LessThan(roiMin) {
			roiMin = r.ROIPercent
		}
		if r.ROIPercent.GreaterThan(roiMax) {
			roiMax = r.ROIPercent
		}
	}

	return domain.PlateauReport{
		MinD:          candidates[lo].Deduction,
		MaxD:          candidates[hi].Deduction,
		ROIMinPercent: roiMin,
		ROIMaxPercent: roiMax,
		ToleranceBp:   toleranceBp,
	}, nil
}

func nonZeroDeductionRows(rows []domain.ScanRow) []domain.ScanRow {
	out := make([]domain.ScanRow, 0, len(rows))
	for _, r := range rows {
		if r.Deduction.GreaterThan(moneydec.Zero) {
			out = append(out, r)
		}
	}
	return out
}
