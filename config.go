package cyberguard

import "time"

/*
config sets up shared constants for the service:
- timeouts and request limits used by the UI server and the backend API client
- common maps - used to list valid values for certain fields, e.g. prediction risk levels
*/

// common constants
const (
	// BackendRequestTimeout is the fixed per-call timeout for requests to the
	// CyberGuard backend API. Calls that exceed it fail with a timeout error.
	BackendRequestTimeout = 30 * time.Second

	// ServerShutdownTimeout is the timeout for graceful UI server shutdown
	ServerShutdownTimeout = 10 * time.Second

	// DefaultAPIRequestSize is the default maximum size of a ui-api request body (64KB)
	DefaultAPIRequestSize int64 = 65536

	// MaxBatchTexts mirrors the backend limit on texts per batch prediction
	MaxBatchTexts = 50

	// DefaultChatMaxResults is the default number of web search results requested per chat query
	DefaultChatMaxResults = 5

	// MaxChatResults mirrors the backend ceiling on web search results per query
	MaxChatResults = 10
)

// common maps - used to validate enum values
var ValidRiskLevels = map[string]bool{ // prediction risk_level field
	"very_low": true,
	"low":      true,
	"medium":   true,
	"high":     true,
}

var ValidPredictionLabels = map[string]bool{ // prediction label field
	"phishing":   true,
	"legitimate": true,
	"uncertain":  true,
	"unknown":    true, // older backends report degraded predictions as "unknown"
}

var ValidContracts = map[string]bool{ // backend endpoint conventions (see internal/ui/client)
	"rest":   true,
	"legacy": true,
}
