// Package config loads and validates the YAML configuration that drives
// every core operation (spec.md §6.1). Grounded on internal/config/input.go
// in the teacher codebase: the same load-then-validate-then-normalize shape,
// retargeted from a multi-scenario retirement household document to a
// year/canton/municipality tax-schedule document.
package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/taxglide/taxglide/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser loads and validates a tax-schedule configuration file.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file, validates it, and
// sorts each canton's brackets by lower bound.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, domain.NewError(domain.ConfigurationMissing, fmt.Sprintf("failed to read file %s", filename), err)
	}

	var cfg domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, domain.NewError(domain.SchemaMismatch, "failed to parse configuration YAML", err)
	}

	if issues := Validate(&cfg); len(issues) > 0 {
		return nil, domain.NewError(domain.ConfigurationInvalid, FormatIssues(issues), nil)
	}

	normalize(&cfg)
	return &cfg, nil
}

// normalize stably sorts every canton's brackets by Lower. Maps and
// multiplier slices are left as loaded. Kept as an explicit step, matching
// the teacher's normalizeConfiguration.
func normalize(cfg *domain.Configuration) {
	for cantonKey, canton := range cfg.Cantons {
		sort.SliceStable(canton.Brackets, func(i, j int) bool {
			return canton.Brackets[i].Lower.LessThan(canton.Brackets[j].Lower)
		})
		cfg.Cantons[cantonKey] = canton
	}
}
