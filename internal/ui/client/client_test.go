package client

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc, contract string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, contract, testLogger()), server
}

func assertKind(t *testing.T, err error, want ErrorKind) *ClientError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %s error, got nil", want)
	}
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *ClientError, got %T: %v", err, err)
	}
	if clientErr.Kind != want {
		t.Fatalf("got error kind %s, want %s (error: %v)", clientErr.Kind, want, clientErr)
	}
	return clientErr
}

func TestPredictPhishingEmptyInputSkipsNetwork(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "rest")

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.PredictPhishing(tt.text, true)
			assertKind(t, err, ErrValidation)
		})
	}

	if calls != 0 {
		t.Errorf("validation failures performed %d network calls, want 0", calls)
	}
}

func TestPredictPhishingDecodesResult(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/phish/predict" {
			t.Errorf("got path %s, want /api/phish/predict", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}

		var req struct {
			Text            string `json:"text"`
			IncludeFeatures bool   `json:"include_features"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if req.Text != "Click here to verify your account!!!" {
			t.Errorf("got text %q", req.Text)
		}
		if !req.IncludeFeatures {
			t.Error("include_features not set")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"label": "phishing",
			"probability": 0.92,
			"confidence": 0.92,
			"risk_level": "high",
			"features": {"url_count": 1, "urgency_score": 2, "suspicion_score": 0.6}
		}`))
	}, "rest")

	result, err := c.PredictPhishing("  Click here to verify your account!!!  ", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Label != "phishing" {
		t.Errorf("got label %q, want phishing", result.Label)
	}
	if result.Probability != 0.92 {
		t.Errorf("got probability %v, want 0.92", result.Probability)
	}
	if result.RiskLevel != "high" {
		t.Errorf("got risk_level %q, want high", result.RiskLevel)
	}
	if result.Features == nil {
		t.Fatal("features missing from result")
	}
	if result.Features.URLCount != 1 || result.Features.UrgencyScore != 2 {
		t.Errorf("features not decoded: %+v", result.Features)
	}
}

func TestRateLimitedRegardlessOfBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"error body", `{"error": "slow down"}`},
		{"html body", "<html>Too Many Requests</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(tt.body))
			}, "rest")

			_, err := c.PredictPhishing("some text", true)
			clientErr := assertKind(t, err, ErrRateLimited)
			if clientErr.UserError() != "Too many requests. Please wait a moment and try again." {
				t.Errorf("rate limit message not fixed: %q", clientErr.UserError())
			}
			if clientErr.StatusCode != http.StatusTooManyRequests {
				t.Errorf("got status %d, want 429", clientErr.StatusCode)
			}
		})
	}
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(server.URL, "rest", testLogger())
	server.Close() // no response will ever be received

	_, err := c.PredictPhishing("some text", true)
	assertKind(t, err, ErrNetwork)
}

func TestSlowResponseIsTimeoutError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"label": "legitimate", "probability": 0.1}`))
	}, "rest")
	c.httpClient.Timeout = 50 * time.Millisecond // shrink the window so the test stays fast

	_, err := c.PredictPhishing("some text", true)
	clientErr := assertKind(t, err, ErrTimeout)
	if clientErr.UserError() != "Request timed out - the service may be busy. Please try again." {
		t.Errorf("unexpected timeout message: %q", clientErr.UserError())
	}
}

func TestApiErrorUsesBodyErrorField(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantKind ErrorKind
	}{
		{
			name:     "error field used verbatim",
			status:   http.StatusBadRequest,
			body:     `{"error": "text too long"}`,
			wantMsg:  "text too long",
			wantKind: ErrAPI,
		},
		{
			name:     "fastapi detail field fallback",
			status:   http.StatusBadRequest,
			body:     `{"detail": "text required"}`,
			wantMsg:  "text required",
			wantKind: ErrAPI,
		},
		{
			name:     "generic message when body has no error field",
			status:   http.StatusInternalServerError,
			body:     `{"oops": true}`,
			wantMsg:  "The service returned an error. Please try again.",
			wantKind: ErrAPI,
		},
		{
			name:     "generic message for empty body",
			status:   http.StatusBadGateway,
			body:     "",
			wantMsg:  "The service returned an error. Please try again.",
			wantKind: ErrAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "rest")

			_, err := c.PredictPhishing("some text", true)
			clientErr := assertKind(t, err, tt.wantKind)
			if clientErr.UserError() != tt.wantMsg {
				t.Errorf("got message %q, want %q", clientErr.UserError(), tt.wantMsg)
			}
			if clientErr.StatusCode != tt.status {
				t.Errorf("got status %d, want %d", clientErr.StatusCode, tt.status)
			}
		})
	}
}

func TestBatchPredictTrimsTextsPreservingOrder(t *testing.T) {
	var got []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/phish/batch" {
			t.Errorf("got path %s, want /api/phish/batch", r.URL.Path)
		}
		var req struct {
			Texts           []string `json:"texts"`
			IncludeFeatures bool     `json:"include_features"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		got = req.Texts
		if req.IncludeFeatures {
			t.Error("include_features should be false")
		}

		_, _ = w.Write([]byte(`{"results": [
			{"label": "phishing", "probability": 0.9},
			{"label": "legitimate", "probability": 0.2}
		], "count": 2}`))
	}, "rest")

	result, err := c.BatchPredict([]string{"  a  ", "b"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got transmitted texts %v, want [a b]", got)
	}
	if result.Count != 2 || len(result.Results) != 2 {
		t.Errorf("got count %d / %d results, want 2 / 2", result.Count, len(result.Results))
	}
	if result.Results[0].Label != "phishing" || result.Results[1].Label != "legitimate" {
		t.Errorf("result order not preserved: %+v", result.Results)
	}
}

func TestBatchPredictValidation(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "rest")

	if _, err := c.BatchPredict(nil, false); err == nil {
		t.Error("empty batch did not fail")
	} else {
		assertKind(t, err, ErrValidation)
	}

	if _, err := c.BatchPredict([]string{"ok", "   "}, false); err == nil {
		t.Error("batch with blank entry did not fail")
	} else {
		assertKind(t, err, ErrValidation)
	}

	if calls != 0 {
		t.Errorf("validation failures performed %d network calls, want 0", calls)
	}
}

func TestBatchPredictDecodesBareArray(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label": "phishing", "probability": 0.8}]`))
	}, "legacy")

	result, err := c.BatchPredict([]string{"a"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 || result.Results[0].Label != "phishing" {
		t.Errorf("bare array not decoded: %+v", result)
	}
}

func TestAskWithWebSearch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/web" {
			t.Errorf("got path %s, want /api/chat/web", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if req["query"] != "what is phishing" {
			t.Errorf("got query %v", req["query"])
		}
		if req["use_web_search"] != true {
			t.Error("use_web_search not set")
		}
		if req["max_results"] != float64(5) {
			t.Errorf("got max_results %v, want default 5", req["max_results"])
		}

		_, _ = w.Write([]byte(`{
			"summary": "Phishing is a social engineering attack.",
			"sources": [{"title": "OWASP", "link": "https://owasp.org", "snippet": "..."}],
			"suggestions": ["How do I report phishing?"]
		}`))
	}, "rest")

	resp, err := c.AskWithWebSearch("  what is phishing  ", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Summary == "" || len(resp.Sources) != 1 || resp.Sources[0].Title != "OWASP" {
		t.Errorf("response not decoded: %+v", resp)
	}
	if len(resp.Suggestions) != 1 {
		t.Errorf("suggestions not decoded: %+v", resp.Suggestions)
	}
}

func TestAskWithWebSearchClampsMaxResults(t *testing.T) {
	var gotMax float64
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotMax, _ = req["max_results"].(float64)
		_, _ = w.Write([]byte(`{"summary": "ok", "sources": []}`))
	}, "rest")

	if _, err := c.AskWithWebSearch("q", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMax != 10 {
		t.Errorf("max_results not clamped: got %v, want 10", gotMax)
	}
}

func TestAskKnowledgeBaseLegacyContract(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("got path %s, want /api/chat", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if req["question"] != "how to spot phishing" {
			t.Errorf("legacy body missing question field: %v", req)
		}
		if _, exists := req["query"]; exists {
			t.Error("legacy body still contains query field")
		}

		_, _ = w.Write([]byte(`{"results": [
			{"q": "How do I spot phishing?", "a": "Check the sender address.", "score": 0.91},
			{"q": "What is smishing?", "a": "Phishing over SMS.", "score": 0.42}
		]}`))
	}, "legacy")

	resp, err := c.AskKnowledgeBase("how to spot phishing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Summary != "Check the sender address." {
		t.Errorf("got summary %q", resp.Summary)
	}
	if len(resp.Sources) != 2 {
		t.Errorf("got %d sources, want 2", len(resp.Sources))
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != "What is smishing?" {
		t.Errorf("runner-up matches not surfaced as suggestions: %v", resp.Suggestions)
	}
}

func TestChatEmptyQueryValidation(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "rest")

	if _, err := c.AskWithWebSearch("   ", 5); err == nil {
		t.Error("blank web search query did not fail")
	} else {
		assertKind(t, err, ErrValidation)
	}
	if _, err := c.AskKnowledgeBase(""); err == nil {
		t.Error("empty kb query did not fail")
	} else {
		assertKind(t, err, ErrValidation)
	}
	if calls != 0 {
		t.Errorf("validation failures performed %d network calls, want 0", calls)
	}
}

func TestGetHealthStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" || r.Method != http.MethodGet {
			t.Errorf("got %s %s, want GET /health", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "ok", "model_loaded": true, "version": "1.2.0"}`))
	}, "rest")

	status, err := c.GetHealthStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "ok" || !status.ModelLoaded {
		t.Errorf("health status not decoded: %+v", status)
	}
}

func TestGetStats(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" || r.Method != http.MethodGet {
			t.Errorf("got %s %s, want GET /stats", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"total_predictions": 120, "phishing_detected": 34, "total_chat_queries": 56}`))
	}, "rest")

	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPredictions != 120 || stats.PhishingDetected != 34 {
		t.Errorf("stats not decoded: %+v", stats)
	}
}

func TestUnknownContractFallsBackToRest(t *testing.T) {
	c := NewClient("http://localhost:1", "banana", testLogger())
	if c.endpoints.chatWeb != "/api/chat/web" {
		t.Errorf("unknown contract did not fall back to rest endpoints: %+v", c.endpoints)
	}
}
