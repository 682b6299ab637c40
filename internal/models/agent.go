package models

import (
	"encoding/json"
	"fmt"
)

// AgentType labels what kind of worker an agent is. The server owns the
// vocabulary; these constants cover the values the API ships with, and
// unknown values pass through untouched.
type AgentType string

const (
	AgentTypeCustom  AgentType = "custom"
	AgentTypeBuilder AgentType = "builder"
	AgentTypeMonitor AgentType = "monitor"
)

// Agent is a registered agent as returned by the agents endpoints.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         AgentType `json:"type"`
	Status       string    `json:"status"`
	Capabilities []string  `json:"capabilities"`
}

// Validate checks the fields every agent record must carry and normalizes
// a missing capability list to an empty one.
func (a *Agent) Validate() error {
	switch {
	case len(a.ID) == 0:
		return &FieldError{Entity: "agent", Field: "id"}
	case len(a.Name) == 0:
		return &FieldError{Entity: "agent", Field: "name"}
	case len(a.Type) == 0:
		return &FieldError{Entity: "agent", Field: "type"}
	case len(a.Status) == 0:
		return &FieldError{Entity: "agent", Field: "status"}
	}
	if a.Capabilities == nil {
		a.Capabilities = []string{}
	}
	return nil
}

// DecodeAgent parses and validates a single agent payload. An absent
// payload fails validation the same way an empty record would.
func DecodeAgent(data json.RawMessage) (*Agent, error) {
	var agent Agent
	if !IsNull(data) {
		if err := json.Unmarshal(data, &agent); err != nil {
			return nil, fmt.Errorf("decoding agent record: %w", err)
		}
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}
	return &agent, nil
}

// DecodeAgentList parses and validates an agent collection. An absent
// payload, which the API uses for an empty collection, yields an empty
// slice.
func DecodeAgentList(data json.RawMessage) ([]Agent, error) {
	if IsNull(data) {
		return []Agent{}, nil
	}
	var agents []Agent
	if err := json.Unmarshal(data, &agents); err != nil {
		return nil, fmt.Errorf("decoding agent list: %w", err)
	}
	for i := range agents {
		if err := agents[i].Validate(); err != nil {
			return nil, err
		}
	}
	return agents, nil
}
