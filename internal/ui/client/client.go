// Package client is used by the ui-api handlers to call the CyberGuard backend API.
//
// Each operation performs a single HTTP call and returns a parsed result or a
// *ClientError. The client translates backend failures into user-friendly messages that
// can be rendered directly to the end user, and keeps the detailed technical error for
// logging (see errors.go). No call is retried: each failure is surfaced to the caller
// exactly once, and retry-on-user-action is the UI's job.
package client

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	cyberguard "github.com/Radhika-RR/CyberGuard---Chatbot"
)

// Client handles communication with the CyberGuard backend API
type Client struct {
	baseURL    string
	endpoints  endpoints
	httpClient *http.Client
	logger     *slog.Logger
	checker    *contractChecker // nil unless EnableContractChecks was called
}

// NewClient creates a client for the backend at baseURL.
//
// contract selects the backend endpoint convention ("rest" or "legacy" - see
// contract.go); unknown values fall back to "rest". A nil logger falls back to
// slog.Default().
func NewClient(baseURL string, contract string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	eps, ok := contracts[contract]
	if !ok {
		logger.Warn("unknown API contract, falling back to rest", slog.String("contract", contract))
		eps = contracts["rest"]
	}

	return &Client{
		baseURL:   baseURL,
		endpoints: eps,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: cyberguard.BackendRequestTimeout,
		},
	}
}

// roundTrip performs one HTTP exchange with the backend and returns the response body.
// Failures are classified into a *ClientError (see errors.go). A diagnostic record
// (method, path, status, elapsed ms) is logged around every call; this has no effect on
// control flow or return values.
func (c *Client) roundTrip(method string, path string, body []byte) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, NewClientInternalError(err, "creating backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("calling backend",
		slog.String("method", method),
		slog.String("path", path),
	)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		clientErr := classifyTransportError(err)
		c.logger.Warn("backend call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", 0),
			slog.Int64("elapsed_ms", elapsed.Milliseconds()),
			slog.String("error", clientErr.LogMessage),
		)
		return nil, clientErr
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, NewClientInternalError(err, "reading backend response")
	}

	c.logger.Debug("backend call completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", res.StatusCode),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, classifyResponseError(res.StatusCode, resBody)
	}

	return resBody, nil
}
