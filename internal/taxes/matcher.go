package taxes

import (
	"encoding/json"
	"fmt"
	"os"
)

// TaxCodeMatches maps platform tax class identifiers to provider tax
// codes. The set is merchant-configured, loaded once at startup and
// treated as an immutable snapshot for the duration of each request.
type TaxCodeMatches map[string]string

// Get returns the provider tax code for a platform tax class.
// Unmatched classes resolve to an empty string; such lines rely on
// provider-side defaults.
func (m TaxCodeMatches) Get(taxClassID string) string {
	return m[taxClassID]
}

// LoadTaxCodeMatches reads a tax-code match set from a JSON file of the
// form {"<taxClassId>": "<providerTaxCode>", ...}. An empty path yields
// an empty set.
func LoadTaxCodeMatches(path string) (TaxCodeMatches, error) {
	if path == "" {
		return TaxCodeMatches{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax code matches: %w", err)
	}

	var matches TaxCodeMatches
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse tax code matches: %w", err)
	}

	return matches, nil
}
