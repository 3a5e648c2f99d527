package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

func rowsWithROI(values ...string) []domain.ScanRow {
	rows := make([]domain.ScanRow, 0, len(values))
	for i, v := range values {
		rows = append(rows, domain.ScanRow{
			Deduction:  d(itoaHundreds(i + 1)),
			ROIPercent: d(v),
		})
	}
	return rows
}

func itoaHundreds(n int) string {
	switch n {
	case 1:
		return "100"
	case 2:
		return "200"
	case 3:
		return "300"
	case 4:
		return "400"
	case 5:
		return "500"
	default:
		return "600"
	}
}

func TestDetectPlateau_ContainsMax(t *testing.T) {
	rows := rowsWithROI("10", "20", "30", "25", "15")
	plateau, err := DetectPlateau(rows, 10000) // huge tolerance: whole range qualifies
	require.NoError(t, err)
	assert.True(t, plateau.ROIMaxPercent.Equal(d("30")))
}

func TestDetectPlateau_NarrowToleranceIsolatesPeak(t *testing.T) {
	rows := rowsWithROI("10", "20", "30", "10", "10")
	plateau, err := DetectPlateau(rows, 1) // 0.01% tolerance: only the peak itself
	require.NoError(t, err)
	assert.True(t, plateau.MinD.Equal(plateau.MaxD), "narrow tolerance should collapse to a single row")
}

func TestDetectPlateau_ExcludesZeroDeductionRow(t *testing.T) {
	rows := []domain.ScanRow{
		{Deduction: d("0"), ROIPercent: d("0")},
		{Deduction: d("100"), ROIPercent: d("5")},
	}
	plateau, err := DetectPlateau(rows, 10000)
	require.NoError(t, err)
	assert.True(t, plateau.MinD.Equal(d("100")))
}

func TestDetectPlateau_EmptyRowsIsError(t *testing.T) {
	_, err := DetectPlateau(nil, 10)
	require.Error(t, err)
}

func TestDetectPlateau_PlateauBoundsStayWithinRowRange(t *testing.T) {
	rows := rowsWithROI("10", "20", "30", "25", "15")
	plateau, err := DetectPlateau(rows, 50)
	require.NoError(t, err)
	assert.True(t, plateau.MinD.GreaterThanOrEqual(d("100")))
	assert.True(t, plateau.MaxD.LessThanOrEqual(d("500")))
}
