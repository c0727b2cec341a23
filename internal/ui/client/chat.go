package client

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	cyberguard "github.com/Radhika-RR/CyberGuard---Chatbot"
	"github.com/Radhika-RR/CyberGuard---Chatbot/internal/ui/types"
)

type chatRequest struct {
	Query        string `json:"query"`
	UseWebSearch bool   `json:"use_web_search"`
	MaxResults   int    `json:"max_results,omitempty"`
}

// AskWithWebSearch answers a cybersecurity question using live web search.
// maxResults is clamped to the backend's 1..10 range; zero or negative selects the default.
func (c *Client) AskWithWebSearch(query string, maxResults int) (*types.ChatResponse, error) {
	if maxResults <= 0 {
		maxResults = cyberguard.DefaultChatMaxResults
	}
	if maxResults > cyberguard.MaxChatResults {
		maxResults = cyberguard.MaxChatResults
	}

	return c.ask(c.endpoints.chatWeb, chatRequest{
		Query:        query,
		UseWebSearch: true,
		MaxResults:   maxResults,
	})
}

// AskKnowledgeBase answers a cybersecurity question from the backend's internal corpus
func (c *Client) AskKnowledgeBase(query string) (*types.ChatResponse, error) {
	return c.ask(c.endpoints.chatKB, chatRequest{
		Query:        query,
		UseWebSearch: false,
	})
}

func (c *Client) ask(path string, chatReq chatRequest) (*types.ChatResponse, error) {
	chatReq.Query = strings.TrimSpace(chatReq.Query)
	if chatReq.Query == "" {
		return nil, NewValidationError("Please enter a question.")
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, NewClientInternalError(err, "marshaling chat request")
	}

	body, err = c.endpoints.encodeChatBody(body)
	if err != nil {
		return nil, NewClientInternalError(err, "encoding chat request for contract")
	}

	resBody, err := c.roundTrip(http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	chatResp, err := decodeChatResponse(resBody)
	if err != nil {
		return nil, err
	}

	c.checkContract(schemaChat, resBody)

	return chatResp, nil
}

// decodeChatResponse parses a chat response body.
//
// The rest contract returns {summary, sources, suggestions}. The legacy knowledge-base
// endpoint instead returned {"results": [{"q", "a", "score"}, ...]}; those are folded
// into the same shape, with the best-matching answer as the summary and the matched
// questions as sources.
func decodeChatResponse(body []byte) (*types.ChatResponse, error) {
	results := gjson.GetBytes(body, "results")
	if !gjson.GetBytes(body, "summary").Exists() && results.IsArray() {
		chatResp := &types.ChatResponse{}
		for i, match := range results.Array() {
			if i == 0 {
				chatResp.Summary = match.Get("a").String()
			} else {
				chatResp.Suggestions = append(chatResp.Suggestions, match.Get("q").String())
			}
			chatResp.Sources = append(chatResp.Sources, types.Source{
				Title:   match.Get("q").String(),
				Snippet: types.TruncateText(match.Get("a").String(), 200),
			})
		}
		return chatResp, nil
	}

	var chatResp types.ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, NewClientInternalError(err, "decoding chat response")
	}
	return &chatResp, nil
}
