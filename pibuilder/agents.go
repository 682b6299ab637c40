package pibuilder

import (
	"net/http"

	"github.com/pi-builder/sdk-go/internal/models"
)

// agentCreateRequest collects the fields of a create-agent call before they
// are shaped into a request body.
type agentCreateRequest struct {
	agentType    models.AgentType
	capabilities []string
}

// AgentOption customizes a create-agent call.
type AgentOption func(*agentCreateRequest)

// WithAgentType overrides the default "custom" type tag.
func WithAgentType(agentType AgentType) AgentOption {
	return func(r *agentCreateRequest) {
		r.agentType = agentType
	}
}

// WithCapabilities sets the capability list the agent advertises.
func WithCapabilities(capabilities ...string) AgentOption {
	return func(r *agentCreateRequest) {
		r.capabilities = capabilities
	}
}

// ListAgents returns every registered agent. A server payload of null is an
// empty listing, not an error.
func (c *Client) ListAgents() ([]Agent, error) {
	data, err := c.engine.Execute(http.MethodGet, "/api/agents", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeAgentList(data)
}

// GetAgent fetches a single agent by its identifier.
func (c *Client) GetAgent(agentID string) (*Agent, error) {
	if len(agentID) == 0 {
		return nil, ErrAgentIDRequired
	}

	data, err := c.engine.Execute(http.MethodGet, "/api/agents/"+agentID, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeAgent(data)
}

// CreateAgent registers a new agent under the given name. Without options
// the agent is created with type "custom" and no capabilities.
func (c *Client) CreateAgent(name string, opts ...AgentOption) (*Agent, error) {
	req := agentCreateRequest{
		agentType:    models.AgentTypeCustom,
		capabilities: []string{},
	}
	for _, opt := range opts {
		opt(&req)
	}
	if req.capabilities == nil {
		req.capabilities = []string{}
	}

	body := map[string]any{
		"name":         name,
		"type":         string(req.agentType),
		"capabilities": req.capabilities,
	}

	data, err := c.engine.Execute(http.MethodPost, "/api/agents", body)
	if err != nil {
		return nil, err
	}
	return models.DecodeAgent(data)
}
