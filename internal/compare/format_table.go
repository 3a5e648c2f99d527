package compare

import (
	"fmt"
	"strings"

	"github.com/taxglide/taxglide/internal/domain"
)

// TableFormatter renders a BracketComparison as an aligned plain-text
// table, for console output.
type TableFormatter struct{}

// Format generates a human-readable table for a bracket comparison.
func (tf TableFormatter) Format(cmp domain.BracketComparison) (string, error) {
	var b strings.Builder
	writeSchedule(&b, "Federal", cmp.Federal)
	writeSchedule(&b, "Cantonal", cmp.Cantonal)
	return b.String(), nil
}

func writeSchedule(b *strings.Builder, name string, sc domain.ScheduleComparison) {
	fmt.Fprintf(b, "%s bracket:\n", name)
	fmt.Fprintf(b, "  before: [%s, %s) @ %s%%\n", sc.Before.From.StringFixed(2), sc.Before.To.StringFixed(2), sc.Before.Rate.StringFixed(2))
	fmt.Fprintf(b, "  after:  [%s, %s) @ %s%%\n", sc.After.From.StringFixed(2), sc.After.To.StringFixed(2), sc.After.Rate.StringFixed(2))
	if sc.Changed {
		fmt.Fprintf(b, "  bracket changed\n")
	}
}
