package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	cyberguard "github.com/Radhika-RR/CyberGuard---Chatbot"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/types"
)

// PredictPhishing analyzes a single text for phishing indicators.
//
// Empty or whitespace-only input fails with a validation error before any network I/O.
func (c *Client) PredictPhishing(text string, includeFeatures bool) (*types.PredictionResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError("Please enter some text to analyze.")
	}

	predictReq := struct {
		Text            string `json:"text"`
		IncludeFeatures bool   `json:"include_features"`
	}{
		Text:            text,
		IncludeFeatures: includeFeatures,
	}

	body, err := json.Marshal(predictReq)
	if err != nil {
		return nil, NewClientInternalError(err, "marshaling predict request")
	}

	resBody, err := c.roundTrip(http.MethodPost, c.endpoints.predict, body)
	if err != nil {
		return nil, err
	}

	var result types.PredictionResult
	if err := json.Unmarshal(resBody, &result); err != nil {
		return nil, NewClientInternalError(err, "decoding predict response")
	}

	c.checkContract(schemaPrediction, resBody)

	return &result, nil
}

// BatchPredict analyzes an ordered sequence of texts in a single backend call.
// Texts are trimmed before transmission and order is preserved.
func (c *Client) BatchPredict(texts []string, includeFeatures bool) (*types.BatchResult, error) {
	if len(texts) == 0 {
		return nil, NewValidationError("Please provide at least one text to analyze.")
	}
	if len(texts) > cyberguard.MaxBatchTexts {
		return nil, NewValidationError(fmt.Sprintf("A batch can contain at most %d texts.", cyberguard.MaxBatchTexts))
	}

	trimmed := make([]string, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, NewValidationError(fmt.Sprintf("Text %d is empty - every entry must contain some text.", i+1))
		}
		trimmed[i] = text
	}

	batchReq := struct {
		Texts           []string `json:"texts"`
		IncludeFeatures bool     `json:"include_features"`
	}{
		Texts:           trimmed,
		IncludeFeatures: includeFeatures,
	}

	body, err := json.Marshal(batchReq)
	if err != nil {
		return nil, NewClientInternalError(err, "marshaling batch request")
	}

	resBody, err := c.roundTrip(http.MethodPost, c.endpoints.batch, body)
	if err != nil {
		return nil, err
	}

	// Legacy backends return the predictions as a bare array
	if gjson.ParseBytes(resBody).IsArray() {
		var results []types.PredictionResult
		if err := json.Unmarshal(resBody, &results); err != nil {
			return nil, NewClientInternalError(err, "decoding batch response array")
		}
		return &types.BatchResult{Results: results, Count: len(results)}, nil
	}

	var result types.BatchResult
	if err := json.Unmarshal(resBody, &result); err != nil {
		return nil, NewClientInternalError(err, "decoding batch response")
	}
	if result.Count == 0 {
		result.Count = len(result.Results)
	}

	return &result, nil
}
