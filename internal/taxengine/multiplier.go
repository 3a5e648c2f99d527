package taxengine

import (
	"fmt"

	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// ApplyMultipliers combines a municipality's "on" multipliers onto base and
// returns the resulting tax, the codes that ended up applied, and any
// non-fatal warnings (spec.md §4.4).
//
// A multiplier is "on" iff (DefaultSelected || code in picks) && code not
// in skips -- skip always wins over an explicit pick or a default. The
// combination is additive: after = base * sum(rate of every "on"
// multiplier). If nothing is on, after is zero, not base -- this is
// intentional (spec.md §4.4, §9) and is exactly why the zero-multiplier
// case below emits a warning rather than silently returning base.
func ApplyMultipliers(base moneydec.Decimal, m domain.Municipality, picks, skips []string) (moneydec.Decimal, []string, []string) {
	pickSet := toSet(picks)
	skipSet := toSet(skips)

	var applied []string
	var warnings []string
	sumRate := moneydec.Zero

	for _, mult := range m.Multipliers {
		on := (mult.DefaultSelected || pickSet[mult.Code]) && !skipSet[mult.Code]
		if on {
			applied = append(applied, mult.Code)
			sumRate = sumRate.Add(mult.Rate)
			continue
		}
		if mult.WarnIfUnselected {
			estimated := base.Mul(mult.Rate)
			warnings = append(warnings, fmt.Sprintf(
				"%s (%s) is not selected; applying it would add approximately %s in tax",
				mult.Name, mult.Code, estimated.StringFixed(2)))
		}
	}

	after := base.Mul(sumRate)
	if len(applied) == 0 {
		warnings = append(warnings, "no multipliers are selected for this municipality; sg_after_multipliers is 0")
	}
	return after, applied, warnings
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
