package apperrors

type ErrorCode string

const (
	ErrCodeInternalError       ErrorCode = "internal_error"
	ErrCodeInvalidRequest      ErrorCode = "invalid_request"
	ErrCodeMalformedBody       ErrorCode = "malformed_body"
	ErrCodeRateLimitExceeded   ErrorCode = "rate_limit_exceeded"
	ErrCodeRequestTooLarge     ErrorCode = "request_too_large"
	ErrCodeUpstreamError       ErrorCode = "upstream_error"
	ErrCodeUpstreamTimeout     ErrorCode = "upstream_timeout"
	ErrCodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
)
