package domain

import "github.com/shopspring/decimal"

// CantonalBracket is one progressive-portion bracket of a canton's simple
// tax: it covers [Lower, Lower+Width) at RatePercent.
type CantonalBracket struct {
	Lower       decimal.Decimal `yaml:"lower" json:"lower"`
	Width       decimal.Decimal `yaml:"width" json:"width"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
}

// Upper returns Lower+Width, the exclusive upper bound of the bracket.
func (b CantonalBracket) Upper() decimal.Decimal {
	return b.Lower.Add(b.Width)
}

// CantonalOverride replaces bracket evaluation with a flat rate once income
// reaches Threshold.
type CantonalOverride struct {
	Threshold   decimal.Decimal `yaml:"threshold" json:"threshold"`
	FlatPercent decimal.Decimal `yaml:"flat_percent" json:"flat_percent"`
}

// RoundingScope controls which stages of evaluation a RoundingPolicy
// applies to.
type RoundingScope string

const (
	ScopeAsOfficial  RoundingScope = "as_official"
	ScopeTaxableOnly RoundingScope = "taxable_only"
	ScopeBoth        RoundingScope = "both"
)

// RoundingPolicy is a canton's rounding rule set:
// TaxableStep determines step-ceiling of taxable income before evaluation;
// TaxRoundTo is the granularity of the final emitted tax amount.
type RoundingPolicy struct {
	TaxableStep decimal.Decimal `yaml:"taxable_step" json:"taxable_step"`
	TaxRoundTo  decimal.Decimal `yaml:"tax_round_to" json:"tax_round_to"`
	Scope       RoundingScope   `yaml:"scope" json:"scope"`
}

// Multiplier is a dimensionless factor summed (never multiplied) across all
// "on" multipliers and applied once to the simple cantonal tax.
type Multiplier struct {
	Code             string          `yaml:"code" json:"code"`
	Name             string          `yaml:"name" json:"name"`
	Rate             decimal.Decimal `yaml:"rate" json:"rate"`
	DefaultSelected  bool            `yaml:"default_selected" json:"default_selected"`
	Optional         bool            `yaml:"optional" json:"optional"`
	WarnIfUnselected bool            `yaml:"warn_if_unselected,omitempty" json:"warn_if_unselected,omitempty"`
}

// Municipality is a named collection of multipliers layered on top of a
// canton's simple tax.
type Municipality struct {
	Name        string       `yaml:"name" json:"name"`
	Multipliers []Multiplier `yaml:"multipliers" json:"multipliers"`
}

// Canton is a full cantonal tax definition: bracket schedule, optional
// high-income override, rounding policy, and its municipalities.
type Canton struct {
	Name           string                  `yaml:"name" json:"name"`
	Abbreviation   string                  `yaml:"abbreviation" json:"abbreviation"`
	Brackets       []CantonalBracket       `yaml:"brackets" json:"brackets"`
	Override       *CantonalOverride       `yaml:"override,omitempty" json:"override,omitempty"`
	Rounding       RoundingPolicy          `yaml:"rounding" json:"rounding"`
	Municipalities map[string]Municipality `yaml:"municipalities" json:"municipalities"`
}
