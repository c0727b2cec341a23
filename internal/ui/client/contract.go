package client

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Two endpoint conventions exist across deployed backends. The "rest" contract is the
// current one; "legacy" matches the original FastAPI service, which used flat chat
// paths and a "question" field instead of "query". The backend contract is selected by
// configuration rather than hard-coded - neither convention is authoritative.
type endpoints struct {
	predict    string
	batch      string
	chatWeb    string
	chatKB     string
	health     string
	stats      string
	queryField string // name of the chat query field in request bodies
}

var contracts = map[string]endpoints{
	"rest": {
		predict:    "/api/phish/predict",
		batch:      "/api/phish/batch",
		chatWeb:    "/api/chat/web",
		chatKB:     "/api/chat/kb",
		health:     "/health",
		stats:      "/stats",
		queryField: "query",
	},
	"legacy": {
		predict:    "/api/phish/predict",
		batch:      "/api/phish/batch",
		chatWeb:    "/api/chat_web",
		chatKB:     "/api/chat",
		health:     "/health",
		stats:      "/stats",
		queryField: "question",
	},
}

// encodeChatBody adapts a rest-shaped chat request body to the active contract.
// Bodies are built with the "query" field; legacy backends expect "question", so the
// field is renamed in place rather than maintaining two request types.
func (e endpoints) encodeChatBody(body []byte) ([]byte, error) {
	if e.queryField == "query" {
		return body, nil
	}

	query := gjson.GetBytes(body, "query")
	body, err := sjson.SetBytes(body, e.queryField, query.String())
	if err != nil {
		return nil, err
	}
	return sjson.DeleteBytes(body, "query")
}
