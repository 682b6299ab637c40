package models

import (
	"encoding/json"
	"fmt"
)

// providerList is the payload shape of the providers endpoint.
type providerList struct {
	Providers []string `json:"providers"`
}

// DecodeProviderList extracts the provider names from the providers
// endpoint payload. An absent payload or a missing providers field yields
// an empty slice.
func DecodeProviderList(data json.RawMessage) ([]string, error) {
	if IsNull(data) {
		return []string{}, nil
	}
	var list providerList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding provider list: %w", err)
	}
	if list.Providers == nil {
		return []string{}, nil
	}
	return list.Providers, nil
}
