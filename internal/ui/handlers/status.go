package handlers

import (
	"net/http"

	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/server/responses"
)

// HandleHealth proxies the backend's health check for the status panel
func (h *HandlerService) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status, err := h.ApiClient.GetHealthStatus()
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, status)
}

// HandleStats proxies the backend's usage counters for the status panel
func (h *HandlerService) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ApiClient.GetStats()
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, stats)
}
