package taxglide

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

// testdataConfigPath locates testdata/config_2025.yaml relative to this
// source file, so the test works regardless of the working directory `go
// test` is invoked from.
func testdataConfigPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", "config_2025.yaml")
}

func loadService(t *testing.T) *Service {
	t.Helper()
	svc, err := Load(testdataConfigPath(t), nil)
	require.NoError(t, err)
	return svc
}

func dd(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

const tolerance = 1.0

func assertNear(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	diff := dd(want).Sub(got).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(tolerance)),
		"want ~%s, got %s (diff %s)", want, got.StringFixed(2), diff.StringFixed(2))
}

// S1: calc income=32000 single
func TestScenario_S1(t *testing.T) {
	svc := loadService(t)
	bd, err := svc.Calc(context.Background(), Request{Status: domain.FilingSingle}, dd("32000"), dd("32000"))
	require.NoError(t, err)
	assertNear(t, "3439.95", bd.Total)
}

// S2: calc income=60000 single
func TestScenario_S2(t *testing.T) {
	svc := loadService(t)
	bd, err := svc.Calc(context.Background(), Request{Status: domain.FilingSingle}, dd("60000"), dd("60000"))
	require.NoError(t, err)
	assertNear(t, "9715.75", bd.Total)
}

// S3: calc income=90000 single
func TestScenario_S3(t *testing.T) {
	svc := loadService(t)
	bd, err := svc.Calc(context.Background(), Request{Status: domain.FilingSingle}, dd("90000"), dd("90000"))
	require.NoError(t, err)
	assertNear(t, "17753.50", bd.Total)
}

// S4: calc income=120000 single
func TestScenario_S4(t *testing.T) {
	svc := loadService(t)
	bd, err := svc.Calc(context.Background(), Request{Status: domain.FilingSingle}, dd("120000"), dd("120000"))
	require.NoError(t, err)
	assertNear(t, "27141.30", bd.Total)
}

// S5: calc income=75000 single, checking every component of the breakdown.
func TestScenario_S5(t *testing.T) {
	svc := loadService(t)
	bd, err := svc.Calc(context.Background(), Request{Status: domain.FilingSingle}, dd("75000"), dd("75000"))
	require.NoError(t, err)
	assertNear(t, "1244.50", bd.Federal)
	assertNear(t, "5050.00", bd.SGSimple)
	assertNear(t, "12271.50", bd.SGAfterMultipliers)
	assertNear(t, "13516.00", bd.Total)
}

// S6: optimise income=85000 max_deduction=10000 step=100 auto-tolerance
func TestScenario_S6(t *testing.T) {
	svc := loadService(t)
	report, err := svc.Optimise(context.Background(), Request{Status: domain.FilingSingle},
		dd("85000"), dd("85000"), dd("10000"), dd("100"), nil)
	require.NoError(t, err)

	zero := decimal.Zero
	hundred := decimal.NewFromInt(100)

	assert.True(t, report.SweetSpot.Deduction.GreaterThanOrEqual(zero))
	assert.True(t, report.SweetSpot.Deduction.Mod(hundred).IsZero(), "sweet spot deduction must be a multiple of 100")
	assert.True(t, report.PlateauNearMaxROI.MaxD.GreaterThanOrEqual(report.SweetSpot.Deduction))
	assert.True(t, report.SweetSpot.TaxSavedPercent.GreaterThan(zero))
}

// S7: compare_brackets income_sg=80000 income_fed=82000 deduction=3500
func TestScenario_S7(t *testing.T) {
	svc := loadService(t)
	cmp, err := svc.CompareBrackets(context.Background(), Request{Status: domain.FilingSingle},
		dd("80000"), dd("82000"), dd("3500"))
	require.NoError(t, err)
	// 82000 sits in [80000,103600); 82000-3500=78500 falls back into [72500,80000).
	assert.True(t, cmp.Federal.Changed)
	// 80000 and 80000-3500=76500 both sit within the cantonal [50000,100000) bracket.
	assert.False(t, cmp.Cantonal.Changed)
}
