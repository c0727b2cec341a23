package client

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrorKind classifies a failed backend call
type ErrorKind string

const (
	ErrValidation  ErrorKind = "validation"   // empty input, caught before any network I/O
	ErrTimeout     ErrorKind = "timeout"      // call exceeded the fixed request timeout
	ErrRateLimited ErrorKind = "rate_limited" // backend responded 429, regardless of body
	ErrNetwork     ErrorKind = "network"      // no HTTP response received
	ErrAPI         ErrorKind = "api"          // any other non-2xx response
	ErrInternal    ErrorKind = "internal"     // client-side failure (marshaling, decoding)
)

// ClientError represents an error encountered when calling the CyberGuard backend API.
// StatusCode 0 = no HTTP response was received.
type ClientError struct {
	Kind        ErrorKind `json:"kind"`
	StatusCode  int       `json:"status_code"`
	UserMessage string    `json:"user_message"`
	LogMessage  string    `json:"log_message"`
}

func (e *ClientError) Error() string {
	return e.LogMessage
}

// UserError returns the user-friendly message, suitable for direct display
func (e *ClientError) UserError() string {
	return e.UserMessage
}

// NewValidationError creates a ClientError for input rejected before any network call
func NewValidationError(userMessage string) *ClientError {
	return &ClientError{
		Kind:        ErrValidation,
		StatusCode:  0,
		UserMessage: userMessage,
		LogMessage:  fmt.Sprintf("validation error: %s", userMessage),
	}
}

// NewClientInternalError creates a ClientError for client-side failures, supply the
// error and an explanation of what was being done when the error occurred
func NewClientInternalError(err error, while string) *ClientError {
	return &ClientError{
		Kind:        ErrInternal,
		StatusCode:  0,
		UserMessage: "An error occurred. Please try again later.",
		LogMessage:  fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// The dual classification below (transport-level vs response-level) is kept as two
// ordered rule chains so the behaviour is deterministic and testable independently of
// any UI. Rules are evaluated once per failed call, first match wins.

type transportRule struct {
	match func(err error) bool
	build func(err error) *ClientError
}

var transportRules = []transportRule{
	{
		// transport timeout - the 30s budget was exceeded before a response arrived
		match: func(err error) bool {
			var netErr net.Error
			return errors.As(err, &netErr) && netErr.Timeout()
		},
		build: func(err error) *ClientError {
			return &ClientError{
				Kind:        ErrTimeout,
				StatusCode:  0,
				UserMessage: "Request timed out - the service may be busy. Please try again.",
				LogMessage:  fmt.Sprintf("request timeout: %v", err),
			}
		},
	},
	{
		// anything else with no response is a connection failure
		match: func(err error) bool { return true },
		build: func(err error) *ClientError {
			return &ClientError{
				Kind:        ErrNetwork,
				StatusCode:  0,
				UserMessage: "Unable to connect to the service. Please check your connection and try again.",
				LogMessage:  fmt.Sprintf("network error: %v", err),
			}
		},
	},
}

// classifyTransportError maps an http.Client.Do error (no response received) to a ClientError
func classifyTransportError(err error) *ClientError {
	for _, rule := range transportRules {
		if rule.match(err) {
			return rule.build(err)
		}
	}
	// unreachable - the last transport rule matches everything
	return NewClientInternalError(err, "classifying transport error")
}

type responseRule struct {
	match func(status int) bool
	build func(status int, body []byte) *ClientError
}

var responseRules = []responseRule{
	{
		// 429 wins over any body content
		match: func(status int) bool { return status == http.StatusTooManyRequests },
		build: func(status int, body []byte) *ClientError {
			return &ClientError{
				Kind:        ErrRateLimited,
				StatusCode:  status,
				UserMessage: "Too many requests. Please wait a moment and try again.",
				LogMessage:  fmt.Sprintf("backend rate limited the request (status %d)", status),
			}
		},
	},
	{
		// any other non-2xx: use the body's error field when present
		match: func(status int) bool { return true },
		build: func(status int, body []byte) *ClientError {
			userMsg := extractErrorMessage(body)
			logMsg := fmt.Sprintf("backend status %d", status)
			if userMsg != "" {
				logMsg += " - " + userMsg
			} else {
				userMsg = "The service returned an error. Please try again."
			}
			return &ClientError{
				Kind:        ErrAPI,
				StatusCode:  status,
				UserMessage: userMsg,
				LogMessage:  logMsg,
			}
		},
	},
}

// classifyResponseError maps a non-2xx backend response to a ClientError
func classifyResponseError(status int, body []byte) *ClientError {
	for _, rule := range responseRules {
		if rule.match(status) {
			return rule.build(status, body)
		}
	}
	// unreachable - the last response rule matches everything
	return NewClientInternalError(fmt.Errorf("status %d", status), "classifying response error")
}

// extractErrorMessage pulls the error message out of a backend error body.
// Newer backends use {"error": "..."}; the FastAPI generation used {"detail": "..."}.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String && msg.Str != "" {
		return msg.Str
	}
	if msg := gjson.GetBytes(body, "detail"); msg.Type == gjson.String && msg.Str != "" {
		return msg.Str
	}
	return ""
}
