package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/taxglide/taxglide/internal/domain"
)

// CSVFormatter formats a BracketComparison as CSV: one row per schedule
// (federal, cantonal).
type CSVFormatter struct{}

// Format generates CSV output for a bracket comparison.
func (cf CSVFormatter) Format(cmp domain.BracketComparison) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Schedule", "Before From", "Before To", "Before Rate",
		"After From", "After To", "After Rate", "Changed",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(formatRow("federal", cmp.Federal)); err != nil {
		return "", err
	}
	if err := writer.Write(formatRow("cantonal", cmp.Cantonal)); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatRow(name string, sc domain.ScheduleComparison) []string {
	return []string{
		name,
		sc.Before.From.StringFixed(2),
		sc.Before.To.StringFixed(2),
		sc.Before.Rate.StringFixed(2),
		sc.After.From.StringFixed(2),
		sc.After.To.StringFixed(2),
		sc.After.Rate.StringFixed(2),
		strconv.FormatBool(sc.Changed),
	}
}
