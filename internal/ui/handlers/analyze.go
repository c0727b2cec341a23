package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/apperrors"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/logger"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/server/responses"
)

type analyzeRequest struct {
	Text            string `json:"text"`
	IncludeFeatures *bool  `json:"include_features,omitempty"`
}

type batchAnalyzeRequest struct {
	Texts           []string `json:"texts"`
	IncludeFeatures bool     `json:"include_features"`
}

// HandleAnalyze runs a phishing prediction for a single text
func (h *HandlerService) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not read the analysis request.")
		return
	}

	// single-text analysis includes the feature breakdown unless the caller opts out
	includeFeatures := true
	if req.IncludeFeatures != nil {
		includeFeatures = *req.IncludeFeatures
	}

	result, err := h.ApiClient.PredictPhishing(req.Text, includeFeatures)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	// surface the verdict in the final request log
	_ = logger.ContextWithLogAttrs(r.Context(),
		slog.String("label", result.Label),
		slog.String("risk_level", result.RiskLevel),
	)

	responses.RespondWithJSON(w, http.StatusOK, result)
}

// HandleBatchAnalyze runs phishing predictions for an ordered set of texts
func (h *HandlerService) HandleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	var req batchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "Could not read the batch analysis request.")
		return
	}

	result, err := h.ApiClient.BatchPredict(req.Texts, req.IncludeFeatures)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	_ = logger.ContextWithLogAttrs(r.Context(),
		slog.Int("batch_size", result.Count),
	)

	responses.RespondWithJSON(w, http.StatusOK, result)
}
