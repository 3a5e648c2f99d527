// Package output formats the result of every core operation (calc,
// optimise, scan, compare_brackets, validate, version) for presentation
// (spec.md §6.3). Grounded on internal/output/report.go in the teacher
// codebase: the same format-name dispatch (console/json/csv) generalised
// from a single ScenarioComparison result type to the half-dozen result
// types this module's operations produce.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxglide/taxglide/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Format names the formatting functions below dispatch on. Every function
// accepts console and json; only Breakdown and ScanRows accept csv.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatCSV     = "csv"
)

func marshalJSON(v any, pretty bool) (string, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Breakdown formats a single TaxBreakdown (the calc operation's result).
func Breakdown(bd domain.TaxBreakdown, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(bd, true)
	case FormatCSV:
		return breakdownCSV(bd)
	case FormatConsole, "":
		return breakdownConsole(bd), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func breakdownConsole(bd domain.TaxBreakdown) string {
	var b strings.Builder
	fmt.Fprintln(&b, strings.Repeat("=", 60))
	fmt.Fprintln(&b, "TAX CALCULATION")
	fmt.Fprintln(&b, strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Federal tax:              %s\n", bd.Federal.StringFixed(2))
	fmt.Fprintf(&b, "Cantonal tax (simple):    %s\n", bd.SGSimple.StringFixed(2))
	fmt.Fprintf(&b, "Cantonal tax (w/ multi.): %s\n", bd.SGAfterMultipliers.StringFixed(2))
	fmt.Fprintf(&b, "Total tax:                %s\n", bd.Total.StringFixed(2))
	fmt.Fprintf(&b, "Average rate:             %s%%\n", bd.AvgRate.Mul(hundred).StringFixed(3))
	fmt.Fprintf(&b, "Marginal rate:            %s%%\n", bd.MarginalTotal.Mul(hundred).StringFixed(3))
	if len(bd.PicksApplied) > 0 {
		fmt.Fprintf(&b, "Multipliers applied:      %s\n", strings.Join(bd.PicksApplied, ", "))
	}
	for _, w := range bd.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

func breakdownCSV(bd domain.TaxBreakdown) (string, error) {
	var b strings.Builder
	fmt.Fprintln(&b, "field,value")
	fmt.Fprintf(&b, "federal,%s\n", bd.Federal.StringFixed(2))
	fmt.Fprintf(&b, "sg_simple,%s\n", bd.SGSimple.StringFixed(2))
	fmt.Fprintf(&b, "sg_after_multipliers,%s\n", bd.SGAfterMultipliers.StringFixed(2))
	fmt.Fprintf(&b, "total,%s\n", bd.Total.StringFixed(2))
	fmt.Fprintf(&b, "avg_rate,%s\n", bd.AvgRate.StringFixed(6))
	fmt.Fprintf(&b, "marginal_total,%s\n", bd.MarginalTotal.StringFixed(6))
	return b.String(), nil
}

// ScanRows formats the scan operation's row table.
func ScanRows(rows []domain.ScanRow, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(rows, true)
	case FormatCSV:
		return scanRowsCSV(rows)
	case FormatConsole, "":
		return scanRowsConsole(rows), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func scanRowsConsole(rows []domain.ScanRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-12s %-10s %-10s\n", "deduction", "total_tax", "saved", "roi_%")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-12s %-12s %-10s %-10s\n",
			r.Deduction.StringFixed(0), r.TotalTax.StringFixed(2), r.Saved.StringFixed(2), r.ROIPercent.StringFixed(2))
	}
	return b.String()
}

func scanRowsCSV(rows []domain.ScanRow) (string, error) {
	var b strings.Builder
	fmt.Fprintln(&b, "deduction,total_tax,federal,sg_after_multipliers,saved,roi_percent")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s\n",
			r.Deduction.StringFixed(0), r.TotalTax.StringFixed(2), r.Federal.StringFixed(2),
			r.SGAfterMultipliers.StringFixed(2), r.Saved.StringFixed(2), r.ROIPercent.StringFixed(2))
	}
	return b.String(), nil
}

// Optimisation formats the optimise operation's result.
func Optimisation(report domain.OptimisationReport, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(report, true)
	case FormatCSV:
		return "", fmt.Errorf("csv output is not supported for optimise; use json or console")
	case FormatConsole, "":
		return optimisationConsole(report), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func optimisationConsole(r domain.OptimisationReport) string {
	var b strings.Builder
	fmt.Fprintln(&b, strings.Repeat("=", 60))
	fmt.Fprintln(&b, "DEDUCTION OPTIMISATION")
	fmt.Fprintln(&b, strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Base total tax:        %s\n", r.BaseTotal.StringFixed(2))
	fmt.Fprintf(&b, "Best ROI deduction:    %s (saves %s, %s%% ROI)\n",
		r.BestRate.Deduction.StringFixed(0), r.BestRate.Saved.StringFixed(2), r.BestRate.SavingsRatePercent.StringFixed(2))
	fmt.Fprintf(&b, "Plateau:               [%s, %s] at tolerance %dbp\n",
		r.PlateauNearMaxROI.MinD.StringFixed(0), r.PlateauNearMaxROI.MaxD.StringFixed(0), r.PlateauNearMaxROI.ToleranceBp)
	fmt.Fprintf(&b, "Sweet spot deduction:  %s\n", r.SweetSpot.Deduction.StringFixed(0))
	fmt.Fprintf(&b, "  %s\n", r.SweetSpot.Explanation)
	if r.FederalNudge != nil {
		fmt.Fprintf(&b, "  100-nudge available:  +%s saves %s more in federal tax\n",
			r.FederalNudge.AdditionalDeduction.StringFixed(0), r.FederalNudge.FederalTaxSaving.StringFixed(2))
	}
	fmt.Fprintf(&b, "Adaptive retry used:   %v (winning tolerance %dbp)\n", r.AdaptiveRetryUsed, r.ToleranceInfo.WinningBp)
	for _, w := range r.MultipliersApplied.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	return b.String()
}

// Comparison formats the compare_brackets operation's result.
func Comparison(cmp domain.BracketComparison, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(cmp, true)
	case FormatConsole, "":
		return comparisonConsole(cmp), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func comparisonConsole(cmp domain.BracketComparison) string {
	var b strings.Builder
	writeScheduleConsole(&b, "Federal", cmp.Federal)
	writeScheduleConsole(&b, "Cantonal", cmp.Cantonal)
	return b.String()
}

func writeScheduleConsole(b *strings.Builder, name string, sc domain.ScheduleComparison) {
	fmt.Fprintf(b, "%s: [%s,%s)@%s%% -> [%s,%s)@%s%%",
		name, sc.Before.From.StringFixed(0), sc.Before.To.StringFixed(0), sc.Before.Rate.StringFixed(2),
		sc.After.From.StringFixed(0), sc.After.To.StringFixed(0), sc.After.Rate.StringFixed(2))
	if sc.Changed {
		fmt.Fprint(b, " (changed)")
	}
	fmt.Fprintln(b)
}

// Validation formats the validate operation's result.
func Validation(res domain.ValidationResult, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(res, true)
	case FormatConsole, "":
		return validationConsole(res), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func validationConsole(res domain.ValidationResult) string {
	var b strings.Builder
	if res.OK {
		fmt.Fprintln(&b, "configuration OK")
		return b.String()
	}
	fmt.Fprintln(&b, "configuration invalid:")
	for _, issue := range res.Issues {
		fmt.Fprintf(&b, "  %s: %s\n", issue.Field, issue.Message)
	}
	return b.String()
}

// Version formats the version operation's result.
func Version(v domain.VersionInfo, format string) (string, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(v, true)
	case FormatConsole, "":
		var b strings.Builder
		fmt.Fprintf(&b, "taxglide %s (schema %s, years: %v)\n", v.Version, v.SchemaVersion, v.SupportedYears)
		return b.String(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
