package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/apperrors"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/logger"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/server/responses"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/types"
)

type chatRequest struct {
	Message      string `json:"message"`
	UseWebSearch bool   `json:"use_web_search"`
	MaxResults   int    `json:"max_results,omitempty"`
}

// HandleChat answers a cybersecurity question, either via live web search or the
// backend's knowledge base. The response is stamped with a message id so the browser
// can key its transcript.
func (h *HandlerService) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not read the chat request.")
		return
	}

	var (
		chatResp *types.ChatResponse
		err      error
		mode     string
	)
	if req.UseWebSearch {
		mode = "web"
		chatResp, err = h.ApiClient.AskWithWebSearch(req.Message, req.MaxResults)
	} else {
		mode = "kb"
		chatResp, err = h.ApiClient.AskKnowledgeBase(req.Message)
	}
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	_ = logger.ContextWithLogAttrs(r.Context(),
		slog.String("chat_mode", mode),
		slog.Int("sources", len(chatResp.Sources)),
	)

	responses.RespondWithJSON(w, http.StatusOK, types.ChatMessage{
		MessageID:    uuid.NewString(),
		Mode:         mode,
		ChatResponse: *chatResp,
	})
}
