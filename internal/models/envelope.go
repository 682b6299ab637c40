package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the wrapper the Pi Builder API puts around every response
// body, successful or not. Data stays raw here; the caller decides what
// shape to decode it into.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// DecodeEnvelope parses a raw response body into an Envelope.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	return &env, nil
}

var nullToken = []byte("null")

// IsNull reports whether a raw payload is absent, either missing from the
// envelope entirely or set to an explicit JSON null.
func IsNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), nullToken)
}

// DecodeObject parses a raw payload into a generic map, used by the
// endpoints that return free-form objects such as metrics and health. An
// absent payload yields a nil map.
func DecodeObject(data json.RawMessage) (map[string]any, error) {
	if IsNull(data) {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding response object: %w", err)
	}
	return out, nil
}
