package client

import (
	"encoding/json"
	"net/http"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/types"
)

// GetHealthStatus reports whether the backend service is up and its model loaded
func (c *Client) GetHealthStatus() (*types.HealthStatus, error) {
	resBody, err := c.roundTrip(http.MethodGet, c.endpoints.health, nil)
	if err != nil {
		return nil, err
	}

	var status types.HealthStatus
	if err := json.Unmarshal(resBody, &status); err != nil {
		return nil, NewClientInternalError(err, "decoding health response")
	}

	return &status, nil
}

// GetStats returns backend usage counters for the status panel
func (c *Client) GetStats() (*types.Stats, error) {
	resBody, err := c.roundTrip(http.MethodGet, c.endpoints.stats, nil)
	if err != nil {
		return nil, err
	}

	var stats types.Stats
	if err := json.Unmarshal(resBody, &stats); err != nil {
		return nil, NewClientInternalError(err, "decoding stats response")
	}

	return &stats, nil
}
