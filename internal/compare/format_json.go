package compare

import (
	"encoding/json"

	"github.com/taxglide/taxglide/internal/domain"
)

// JSONFormatter formats a BracketComparison as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for a bracket comparison.
func (jf JSONFormatter) Format(cmp domain.BracketComparison) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(cmp, "", "  ")
	} else {
		data, err = json.Marshal(cmp)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
