package domain

// Configuration is the complete, year-keyed input document: federal
// bracket tables for every filing status, every configured canton (each
// with its municipalities), and the defaults used when a request omits
// --canton/--municipality. It is loaded once per run by internal/config
// and is treated as immutable by every evaluator that holds it.
type Configuration struct {
	Year                int                       `yaml:"year" json:"year"`
	DefaultCanton       string                    `yaml:"default_canton" json:"default_canton"`
	DefaultMunicipality string                    `yaml:"default_municipality" json:"default_municipality"`
	Federal             map[FilingStatus]FederalTable `yaml:"federal" json:"federal"`
	Cantons             map[string]Canton         `yaml:"cantons" json:"cantons"`
}

// Canton looks up a canton by abbreviation/key, falling back to
// DefaultCanton when key is empty.
func (c *Configuration) Canton(key string) (Canton, bool) {
	if key == "" {
		key = c.DefaultCanton
	}
	canton, ok := c.Cantons[key]
	return canton, ok
}

// Municipality looks up a municipality within canton by key, falling back
// to DefaultMunicipality when key is empty.
func (c *Configuration) Municipality(canton Canton, key string) (Municipality, bool) {
	if key == "" {
		key = c.DefaultMunicipality
	}
	m, ok := canton.Municipalities[key]
	return m, ok
}

// FederalTableFor returns the federal bracket table for status.
func (c *Configuration) FederalTableFor(status FilingStatus) (FederalTable, bool) {
	t, ok := c.Federal[status]
	return t, ok
}
