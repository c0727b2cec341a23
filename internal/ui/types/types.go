package types

// =============================================================================
// PHISHING ANALYSIS TYPES
// =============================================================================

// PredictionResult is the backend's verdict for a single analyzed text.
// Results are immutable once received and held transiently in UI state.
type PredictionResult struct {
	Label       string           `json:"label"` // "phishing", "legitimate" or "uncertain"
	Probability float64          `json:"probability"`
	Confidence  float64          `json:"confidence"`
	RiskLevel   string           `json:"risk_level"` // "very_low", "low", "medium" or "high"
	Features    *FeatureAnalysis `json:"features,omitempty"`
}

// FeatureAnalysis holds the auxiliary signals returned alongside a prediction
// for explainability display.
type FeatureAnalysis struct {
	URLCount             int      `json:"url_count"`
	HasSuspiciousURL     bool     `json:"has_suspicious_url"`
	SuspiciousDomains    []string `json:"suspicious_domains"`
	UrgencyScore         int      `json:"urgency_score"`
	FinancialScore       int      `json:"financial_score"`
	ThreatScore          int      `json:"threat_score"`
	ActionScore          int      `json:"action_score"`
	ExcessivePunctuation int      `json:"excessive_punctuation"`
	CapsWordsCount       int      `json:"caps_words_count"`
	TextLength           int      `json:"text_length"`
	WordCount            int      `json:"word_count"`
	SuspicionScore       float64  `json:"suspicion_score"`
}

// BatchResult holds per-text predictions for a batch request, in input order.
type BatchResult struct {
	Results []PredictionResult `json:"results"`
	Count   int                `json:"count"`
}

// =============================================================================
// CHAT TYPES
// =============================================================================

// Source is a single reference backing a chat answer
type Source struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// ChatResponse is the backend's answer to a chat query (web search or knowledge base)
type ChatResponse struct {
	Summary     string   `json:"summary"`
	Sources     []Source `json:"sources"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ChatMessage wraps a ChatResponse for the browser transcript. The MessageID is
// generated by the UI server so the frontend can key its message list.
type ChatMessage struct {
	MessageID string `json:"message_id"`
	Mode      string `json:"mode"` // "web" or "kb"
	ChatResponse
}

// =============================================================================
// BACKEND STATUS TYPES
// =============================================================================

// HealthStatus reports the backend service's health
type HealthStatus struct {
	Status        string  `json:"status"`
	ModelLoaded   bool    `json:"model_loaded"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds,omitempty"`
}

// Stats reports backend usage counters for the status panel
type Stats struct {
	TotalPredictions     int64   `json:"total_predictions"`
	PhishingDetected     int64   `json:"phishing_detected"`
	TotalChatQueries     int64   `json:"total_chat_queries"`
	AverageConfidencePct float64 `json:"average_confidence_pct"`
	UptimeSeconds        float64 `json:"uptime_seconds,omitempty"`
}

// =============================================================================
// API RESPONSE TYPES
// =============================================================================

// ErrorResponse represents an error response from the backend API.
// Newer backends populate `error`; the FastAPI generation populated `detail`.
type ErrorResponse struct {
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}
