package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
year: 2025
default_canton: SG
default_municipality: stgallen
federal:
  single:
    segments:
      - from: "0"
        to: "14500"
        at_income: "0"
        base_tax_at: "0"
        per100: "0"
      - from: "14500"
        to: "31600"
        at_income: "14500"
        base_tax_at: "0"
        per100: "0.77"
      - from: "31600"
        unbounded: true
        at_income: "31600"
        base_tax_at: "131.67"
        per100: "0.88"
cantons:
  SG:
    name: St. Gallen
    abbreviation: SG
    brackets:
      - lower: "0"
        width: "10000"
        rate_percent: "2"
      - lower: "10000"
        width: "20000"
        rate_percent: "5"
      - lower: "30000"
        width: "1000000"
        rate_percent: "8"
    rounding:
      tax_round_to: "0.05"
      scope: as_official
    municipalities:
      stgallen:
        name: St. Gallen
        multipliers:
          - code: KANTON
            name: Kantonssteuer
            rate: "1.05"
            default_selected: true
          - code: GEMEINDE
            name: Gemeindesteuer
            rate: "1.48"
            default_selected: true
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestInputParser_LoadFromFile_Valid(t *testing.T) {
	path := writeTempConfig(t, sampleYAML)
	p := NewInputParser()
	cfg, err := p.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.Year)
	assert.Contains(t, cfg.Cantons, "SG")
}

func TestInputParser_LoadFromFile_MissingFile(t *testing.T) {
	p := NewInputParser()
	_, err := p.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInputParser_LoadFromFile_UnknownFieldRejected(t *testing.T) {
	bad := sampleYAML + "\nbogus_top_level_field: true\n"
	path := writeTempConfig(t, bad)
	p := NewInputParser()
	_, err := p.LoadFromFile(path)
	require.Error(t, err)
}

func TestInputParser_LoadFromFile_InvalidBracketGapRejected(t *testing.T) {
	bad := `
year: 2025
federal:
  single:
    segments:
      - from: "0"
        to: "1000"
        at_income: "0"
        base_tax_at: "0"
        per100: "0"
cantons:
  SG:
    name: SG
    brackets:
      - lower: "0"
        width: "100"
        rate_percent: "1"
      - lower: "500"
        width: "100"
        rate_percent: "2"
    rounding:
      tax_round_to: "0.05"
      scope: as_official
    municipalities: {}
`
	path := writeTempConfig(t, bad)
	p := NewInputParser()
	_, err := p.LoadFromFile(path)
	require.Error(t, err)
}
