package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FederalSegment is one row of the federal marginal-bracket table: a
// half-open income interval [From, To) with an anchor income at which a
// known base tax applies, plus the marginal rate charged per 100 units of
// income above that anchor. An unbounded final segment carries To with
// Unbounded set true.
type FederalSegment struct {
	From        decimal.Decimal `yaml:"from" json:"from"`
	To          decimal.Decimal `yaml:"to" json:"to"`
	Unbounded   bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
	AtIncome    decimal.Decimal `yaml:"at_income" json:"at_income"`
	BaseTaxAt   decimal.Decimal `yaml:"base_tax_at" json:"base_tax_at"`
	Per100      decimal.Decimal `yaml:"per100" json:"per100"`
}

// Contains reports whether income falls in [From, To) (or [From, +inf) when
// Unbounded).
func (s FederalSegment) Contains(income decimal.Decimal) bool {
	if income.LessThan(s.From) {
		return false
	}
	if s.Unbounded {
		return true
	}
	return income.LessThan(s.To)
}

// FederalTable is the ordered, gap-free sequence of FederalSegment for one
// filing status, pre-sorted by From so Lookup can binary search it.
type FederalTable struct {
	Segments []FederalSegment `yaml:"segments" json:"segments"`
}

// Lookup finds the segment covering income via binary search over the
// sorted segment list (spec.md §4.2 step 2). It returns ok=false when the
// table is empty, when income falls below the first segment's From (the
// zero-tax region below the minimum taxable threshold), or when income is
// at or above the To of a last segment that is not Unbounded.
func (t FederalTable) Lookup(income decimal.Decimal) (FederalSegment, bool) {
	segs := t.Segments
	if len(segs) == 0 || income.LessThan(segs[0].From) {
		return FederalSegment{}, false
	}
	i := sort.Search(len(segs), func(i int) bool {
		seg := segs[i]
		return seg.Unbounded || income.LessThan(seg.To)
	})
	if i >= len(segs) {
		return FederalSegment{}, false
	}
	return segs[i], true
}
