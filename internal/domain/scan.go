package domain

import "github.com/shopspring/decimal"

// SegmentInfo is the minimal federal-segment identity attached to a
// ScanRow: enough to detect a bracket change without exposing the whole
// FederalSegment (which also carries AtIncome/BaseTaxAt, internal to
// evaluation).
type SegmentInfo struct {
	From   decimal.Decimal `json:"from"`
	To     decimal.Decimal `json:"to"`
	Per100 decimal.Decimal `json:"per100"`
}

// ScanRow is one row of a deduction scan (spec.md §3, §4.7): the tax
// outcome, ROI, and local context at a single deduction amount.
type ScanRow struct {
	Deduction               decimal.Decimal `json:"deduction"`
	NewIncome               decimal.Decimal `json:"new_income"`
	NewIncomeSG             decimal.Decimal `json:"new_income_sg"`
	NewIncomeFed            decimal.Decimal `json:"new_income_fed"`
	TotalTax                decimal.Decimal `json:"total_tax"`
	Federal                 decimal.Decimal `json:"federal"`
	SGSimple                decimal.Decimal `json:"sg_simple"`
	SGAfterMultipliers      decimal.Decimal `json:"sg_after_multipliers"`
	Saved                   decimal.Decimal `json:"saved"`
	ROIPercent              decimal.Decimal `json:"roi_percent"`
	FederalSegmentAtThisRow SegmentInfo     `json:"federal_segment_at_this_row"`
	LocalMarginalPercent    *decimal.Decimal `json:"local_marginal_percent,omitempty"`
}

// PlateauReport is the contiguous deduction range whose ROI lies within
// ToleranceBp of the observed maximum ROI (spec.md §4.8).
type PlateauReport struct {
	MinD          decimal.Decimal `json:"min_d"`
	MaxD          decimal.Decimal `json:"max_d"`
	ROIMinPercent decimal.Decimal `json:"roi_min_percent"`
	ROIMaxPercent decimal.Decimal `json:"roi_max_percent"`
	ToleranceBp   int             `json:"tolerance_bp"`
}

// FederalNudge is the "100-nudge" suggestion: a small additional deduction
// that aligns post-deduction federal taxable income with the next-lower
// federal segment boundary.
type FederalNudge struct {
	AdditionalDeduction decimal.Decimal `json:"additional_deduction"`
	FederalTaxSaving    decimal.Decimal `json:"federal_tax_saving"`
}

// IncomeDetails reports the original and after-deduction SG/federal income
// figures attached to a SweetSpot.
type IncomeDetails struct {
	OriginalSG  decimal.Decimal `json:"original_sg"`
	OriginalFed decimal.Decimal `json:"original_fed"`
	AfterSG     decimal.Decimal `json:"after_sg"`
	AfterFed    decimal.Decimal `json:"after_fed"`
}

// MultipliersApplied carries the applied multiplier codes and any warnings
// (e.g. fire-service not selected) produced while computing the sweet
// spot's tax.
type MultipliersApplied struct {
	Applied  []string `json:"applied"`
	Warnings []string `json:"warnings"`
}

// OptimizationSummary is the compact headline of a SweetSpot.
type OptimizationSummary struct {
	ROIPercent           decimal.Decimal `json:"roi_percent"`
	PlateauWidthCHF      decimal.Decimal `json:"plateau_width_chf"`
	FederalBracketChanged bool           `json:"federal_bracket_changed"`
	MarginalRatePercent  decimal.Decimal `json:"marginal_rate_percent"`
}

// SweetSpot is the selected deduction: the right endpoint of the plateau
// (spec.md §4.10).
type SweetSpot struct {
	Deduction            decimal.Decimal     `json:"deduction"`
	NewIncomeSG          decimal.Decimal     `json:"new_income_sg"`
	NewIncomeFed         decimal.Decimal     `json:"new_income_fed"`
	TotalTaxAtSpot       decimal.Decimal     `json:"total_tax_at_spot"`
	FederalTaxAtSpot     decimal.Decimal     `json:"federal_tax_at_spot"`
	SGTaxAtSpot          decimal.Decimal     `json:"sg_tax_at_spot"`
	BaselineTotalTax     decimal.Decimal     `json:"baseline_total_tax"`
	BaselineFederalTax   decimal.Decimal     `json:"baseline_federal_tax"`
	BaselineSGTax        decimal.Decimal     `json:"baseline_sg_tax"`
	TaxSavedAbsolute     decimal.Decimal     `json:"tax_saved_absolute"`
	TaxSavedPercent      decimal.Decimal     `json:"tax_saved_percent"`
	Explanation          string              `json:"explanation"`
	IncomeDetails        IncomeDetails       `json:"income_details"`
	MultipliersApplied   MultipliersApplied  `json:"multipliers_applied"`
	OptimizationSummary  OptimizationSummary `json:"optimization_summary"`
	FederalBracketChanged bool               `json:"federal_bracket_changed"`
	FederalNudge         *FederalNudge       `json:"federal_100_nudge,omitempty"`
}

// BestRate is the row of maximum ROI, reported alongside the sweet spot so
// a caller can see how far the conservative choice is from the
// theoretical peak.
type BestRate struct {
	Deduction          decimal.Decimal `json:"deduction"`
	NewIncome          decimal.Decimal `json:"new_income"`
	Saved              decimal.Decimal `json:"saved"`
	SavingsRatePercent decimal.Decimal `json:"savings_rate_percent"`
}

// ToleranceCandidate is one evaluated (tolerance, plateau, sweet spot) pair
// considered by the adaptive retry loop.
type ToleranceCandidate struct {
	ToleranceBp         int             `json:"tolerance_bp"`
	Plateau             PlateauReport   `json:"plateau"`
	SweetSpot           SweetSpot       `json:"sweet_spot"`
	Utilisation         decimal.Decimal `json:"utilisation"`
	ROIAtSpot           decimal.Decimal `json:"roi_at_spot"`
}

// SelectionReason names why the adaptive retry loop picked the winning
// tolerance candidate over the first one tried.
type SelectionReason string

const (
	ReasonFirstChoice          SelectionReason = "first_choice"
	ReasonROIImprovement       SelectionReason = "roi_improvement"
	ReasonUtilisationImprovement SelectionReason = "utilisation_improvement"
	ReasonBalancedImprovement  SelectionReason = "balanced_improvement"
)

// Diagnostics records which tolerance won the adaptive retry and how much
// better it was than the first candidate tried (spec.md §4.9).
type Diagnostics struct {
	Candidates              []ToleranceCandidate `json:"candidates"`
	WinningToleranceBp      int                  `json:"winning_tolerance_bp"`
	ROIImprovement          decimal.Decimal      `json:"roi_improvement"`
	UtilisationImprovement  decimal.Decimal      `json:"utilisation_improvement"`
	SelectionReason         SelectionReason      `json:"selection_reason"`
}

// ToleranceInfo is the subset of Diagnostics surfaced at the top level of
// an OptimisationReport.
type ToleranceInfo struct {
	Requested    *int            `json:"requested_bp,omitempty"`
	Schedule     []int           `json:"schedule_bp"`
	WinningBp    int             `json:"winning_bp"`
	Reason       SelectionReason `json:"reason"`
}

// OptimisationReport is the full output of the optimise() core operation
// (spec.md §4.11, §6.2).
type OptimisationReport struct {
	BaseTotal           decimal.Decimal    `json:"base_total"`
	BestRate            BestRate           `json:"best_rate"`
	PlateauNearMaxROI   PlateauReport      `json:"plateau_near_max_roi"`
	SweetSpot           SweetSpot          `json:"sweet_spot"`
	FederalNudge        *FederalNudge      `json:"federal_100_nudge,omitempty"`
	AdaptiveRetryUsed   bool               `json:"adaptive_retry_used"`
	MultipliersApplied  MultipliersApplied `json:"multipliers_applied"`
	ToleranceInfo       ToleranceInfo      `json:"tolerance_info"`
}

// BracketSnapshot is the before/after bracket object returned by
// compare_brackets (spec.md §6.2) for one schedule (federal or cantonal).
type BracketSnapshot struct {
	From   decimal.Decimal `json:"from"`
	To     decimal.Decimal `json:"to"`
	Rate   decimal.Decimal `json:"rate"`
	Label  string          `json:"label"`
}

// ScheduleComparison is {before, after, changed} for one schedule.
type ScheduleComparison struct {
	Before  BracketSnapshot `json:"before"`
	After   BracketSnapshot `json:"after"`
	Changed bool            `json:"changed"`
}

// BracketComparison is the full result of compare_brackets: federal and
// cantonal schedule comparisons side by side.
type BracketComparison struct {
	Federal  ScheduleComparison `json:"federal"`
	Cantonal ScheduleComparison `json:"cantonal"`
}

// VersionInfo is the result of the version() core operation.
type VersionInfo struct {
	Version         string `json:"version"`
	SchemaVersion   string `json:"schema_version"`
	SupportedYears  []int  `json:"supported_years"`
}
