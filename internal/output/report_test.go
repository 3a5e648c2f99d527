package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxglide/taxglide/internal/domain"
)

func sampleBreakdown() domain.TaxBreakdown {
	return domain.TaxBreakdown{
		Federal:            decimal.NewFromInt(1000),
		SGSimple:           decimal.NewFromInt(2000),
		SGAfterMultipliers: decimal.NewFromInt(5000),
		Total:              decimal.NewFromInt(6000),
		AvgRate:            decimal.NewFromFloat(0.12),
		MarginalTotal:      decimal.NewFromFloat(0.2),
	}
}

func TestBreakdown_JSON(t *testing.T) {
	out, err := Breakdown(sampleBreakdown(), FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, "\"total\"")
}

func TestBreakdown_Console(t *testing.T) {
	out, err := Breakdown(sampleBreakdown(), FormatConsole)
	require.NoError(t, err)
	assert.Contains(t, out, "Total tax")
}

func TestBreakdown_CSV(t *testing.T) {
	out, err := Breakdown(sampleBreakdown(), FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "field,value")
}

func TestBreakdown_UnsupportedFormat(t *testing.T) {
	_, err := Breakdown(sampleBreakdown(), "xml")
	require.Error(t, err)
}

func TestScanRows_CSVHasHeaderAndRows(t *testing.T) {
	rows := []domain.ScanRow{
		{Deduction: decimal.NewFromInt(0), TotalTax: decimal.NewFromInt(6000), Saved: decimal.Zero, ROIPercent: decimal.Zero},
		{Deduction: decimal.NewFromInt(100), TotalTax: decimal.NewFromInt(5900), Saved: decimal.NewFromInt(100), ROIPercent: decimal.NewFromInt(100)},
	}
	out, err := ScanRows(rows, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, out, "deduction,total_tax")
}

func TestVersion_Console(t *testing.T) {
	out, err := Version(domain.VersionInfo{Version: "1.0.0", SchemaVersion: "2025.1", SupportedYears: []int{2025}}, FormatConsole)
	require.NoError(t, err)
	assert.Contains(t, out, "taxglide 1.0.0")
}
