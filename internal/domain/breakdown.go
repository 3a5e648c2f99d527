package domain

import "github.com/shopspring/decimal"

// TaxBreakdown is the result of evaluating the tax kernel once, at a single
// pair of (income_sg, income_fed) (spec.md §4.6).
type TaxBreakdown struct {
	Federal              decimal.Decimal `json:"federal"`
	SGSimple             decimal.Decimal `json:"sg_simple"`
	SGAfterMultipliers   decimal.Decimal `json:"sg_after_multipliers"`
	Total                decimal.Decimal `json:"total"`
	AvgRate              decimal.Decimal `json:"avg_rate"`
	MarginalTotal        decimal.Decimal `json:"marginal_total"`
	MarginalFederalPer100 decimal.Decimal `json:"marginal_federal_per100"`
	PicksApplied         []string        `json:"picks_applied"`
	Warnings             []string        `json:"warnings"`
}
