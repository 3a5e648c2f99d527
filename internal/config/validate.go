package config

import (
	"fmt"
	"strings"

	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
)

// Validate checks structural and semantic invariants on a loaded
// configuration (spec.md §6.1): brackets must be sorted and gap-free,
// bracket anchors must land inside their own segment, rates must be
// non-negative, and multiplier codes within a municipality must be unique.
func Validate(cfg *domain.Configuration) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	if cfg.Year == 0 {
		issues = append(issues, domain.ValidationIssue{Field: "year", Message: "year is required"})
	}
	if len(cfg.Federal) == 0 {
		issues = append(issues, domain.ValidationIssue{Field: "federal", Message: "at least one federal filing-status table is required"})
	}
	for status, table := range cfg.Federal {
		issues = append(issues, validateFederalTable(string(status), table)...)
	}

	if len(cfg.Cantons) == 0 {
		issues = append(issues, domain.ValidationIssue{Field: "cantons", Message: "at least one canton is required"})
	}
	for key, canton := range cfg.Cantons {
		issues = append(issues, validateCanton(key, canton)...)
	}

	if cfg.DefaultCanton != "" {
		if _, ok := cfg.Cantons[cfg.DefaultCanton]; !ok {
			issues = append(issues, domain.ValidationIssue{Field: "default_canton", Message: fmt.Sprintf("default_canton %q is not a configured canton", cfg.DefaultCanton)})
		}
	}
	if cfg.DefaultMunicipality != "" {
		if canton, ok := cfg.Cantons[cfg.DefaultCanton]; ok {
			if _, ok := canton.Municipalities[cfg.DefaultMunicipality]; !ok {
				issues = append(issues, domain.ValidationIssue{Field: "default_municipality", Message: fmt.Sprintf("default_municipality %q is not a municipality of default_canton %q", cfg.DefaultMunicipality, cfg.DefaultCanton)})
			}
		}
	}

	return issues
}

func validateFederalTable(status string, table domain.FederalTable) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	field := fmt.Sprintf("federal.%s", status)

	for i, seg := range table.Segments {
		if seg.Per100.IsNegative() {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("segment %d has a negative per100 rate", i)})
		}
		if !seg.Unbounded && seg.To.LessThanOrEqual(seg.From) {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("segment %d has to <= from", i)})
		}
		if seg.AtIncome.LessThan(seg.From) || (!seg.Unbounded && seg.AtIncome.GreaterThanOrEqual(seg.To)) {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("segment %d anchor at_income is outside its own segment", i)})
		}
		if i > 0 {
			prev := table.Segments[i-1]
			if !prev.To.Equal(seg.From) {
				issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("segment %d does not start where segment %d ends (gap or overlap)", i, i-1)})
			}
		}
		if seg.Unbounded && i != len(table.Segments)-1 {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("segment %d is marked unbounded but is not the last segment", i)})
		}
	}
	return issues
}

func validateCanton(key string, canton domain.Canton) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	field := fmt.Sprintf("cantons.%s", key)

	for i, b := range canton.Brackets {
		if b.RatePercent.IsNegative() {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("bracket %d has a negative rate", i)})
		}
		if b.Width.LessThanOrEqual(moneydec.Zero) {
			issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("bracket %d has non-positive width", i)})
		}
		if i > 0 {
			prevUpper := canton.Brackets[i-1].Upper()
			if !prevUpper.Equal(b.Lower) {
				issues = append(issues, domain.ValidationIssue{Field: field, Message: fmt.Sprintf("bracket %d does not start where bracket %d ends (gap or overlap)", i, i-1)})
			}
		}
	}

	if canton.Override != nil && canton.Override.FlatPercent.IsNegative() {
		issues = append(issues, domain.ValidationIssue{Field: field + ".override", Message: "flat_percent override must not be negative"})
	}

	for muniKey, muni := range canton.Municipalities {
		seen := map[string]bool{}
		for _, m := range muni.Multipliers {
			if seen[m.Code] {
				issues = append(issues, domain.ValidationIssue{
					Field:   fmt.Sprintf("%s.municipalities.%s", field, muniKey),
					Message: fmt.Sprintf("multiplier code %q is duplicated", m.Code),
				})
			}
			seen[m.Code] = true
			if m.Rate.IsNegative() {
				issues = append(issues, domain.ValidationIssue{
					Field:   fmt.Sprintf("%s.municipalities.%s", field, muniKey),
					Message: fmt.Sprintf("multiplier %q has a negative rate", m.Code),
				})
			}
		}
	}

	return issues
}

// FormatIssues renders a slice of ValidationIssue as a single
// newline-separated message, used when wrapping them into a domain.Error.
func FormatIssues(issues []domain.ValidationIssue) string {
	var b strings.Builder
	for i, issue := range issues {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(issue.Field)
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}
