// Package handlers implements the ui-api endpoints used by the browser frontend.
// Each handler bridges a browser request to the backend API client and maps client
// errors onto HTTP statuses with messages suitable for direct display.
package handlers

import (
	"errors"
	"net/http"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/apperrors"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/client"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/server/responses"
)

type HandlerService struct {
	ApiClient   *client.Client
	Environment string
}

// kindStatus maps a client error kind to the HTTP status and error code the ui-api
// reports to the browser
var kindStatus = map[client.ErrorKind]struct {
	status int
	code   apperrors.ErrorCode
}{
	client.ErrValidation:  {http.StatusBadRequest, apperrors.ErrCodeInvalidRequest},
	client.ErrTimeout:     {http.StatusGatewayTimeout, apperrors.ErrCodeUpstreamTimeout},
	client.ErrRateLimited: {http.StatusTooManyRequests, apperrors.ErrCodeRateLimitExceeded},
	client.ErrNetwork:     {http.StatusBadGateway, apperrors.ErrCodeUpstreamUnavailable},
	client.ErrAPI:         {http.StatusBadGateway, apperrors.ErrCodeUpstreamError},
	client.ErrInternal:    {http.StatusInternalServerError, apperrors.ErrCodeInternalError},
}

// respondClientError converts a client error into a ui-api error response.
// The user-facing message from the client is passed through untouched.
func respondClientError(w http.ResponseWriter, r *http.Request, err error) {
	var clientErr *client.ClientError
	if !errors.As(err, &clientErr) {
		responses.RespondWithError(w, r, http.StatusInternalServerError,
			apperrors.ErrCodeInternalError, "An error occurred. Please try again.")
		return
	}

	mapping, ok := kindStatus[clientErr.Kind]
	if !ok {
		mapping.status = http.StatusInternalServerError
		mapping.code = apperrors.ErrCodeInternalError
	}

	responses.RespondWithError(w, r, mapping.status, mapping.code, clientErr.UserError())
}
