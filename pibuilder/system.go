package pibuilder

import (
	"net/http"

	"github.com/pi-builder/sdk-go/internal/models"
)

// ListProviders returns the names of the execution providers the server
// can dispatch work to. A missing provider list is an empty one.
func (c *Client) ListProviders() ([]string, error) {
	data, err := c.engine.Execute(http.MethodGet, "/api/providers", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeProviderList(data)
}

// GetMetrics returns the server's current metrics snapshot as a free-form
// map.
func (c *Client) GetMetrics() (map[string]any, error) {
	data, err := c.engine.Execute(http.MethodGet, "/api/metrics", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeObject(data)
}

// Health returns the payload of the server's health endpoint. Unlike the
// rest of the API this endpoint lives at /health, outside the /api prefix.
func (c *Client) Health() (map[string]any, error) {
	data, err := c.engine.Execute(http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeObject(data)
}
