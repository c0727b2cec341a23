package client

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

type schemaKind string

const (
	schemaPrediction schemaKind = "prediction"
	schemaChat       schemaKind = "chat"
)

var schemaFiles = map[schemaKind]string{
	schemaPrediction: "schemas/prediction.json",
	schemaChat:       "schemas/chat.json",
}

// contractChecker validates successful backend response bodies against the expected
// contract. Violations are logged, never surfaced to callers - this is a dev aid for
// catching backend contract drift between the two deployed conventions.
type contractChecker struct {
	schemas map[schemaKind]*jsonschema.Schema
	logger  *slog.Logger
}

// EnableContractChecks compiles the embedded response schemas and turns on
// dev-mode validation of backend responses.
func (c *Client) EnableContractChecks() error {
	compiler := jsonschema.NewCompiler()

	for kind, file := range schemaFiles {
		raw, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading embedded schema %s: %w", file, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("parsing embedded schema %s: %w", file, err)
		}
		if err := compiler.AddResource(string(kind)+".json", doc); err != nil {
			return fmt.Errorf("adding schema resource %s: %w", file, err)
		}
	}

	compiled := make(map[schemaKind]*jsonschema.Schema, len(schemaFiles))
	for kind := range schemaFiles {
		sch, err := compiler.Compile(string(kind) + ".json")
		if err != nil {
			return fmt.Errorf("compiling schema %s: %w", kind, err)
		}
		compiled[kind] = sch
	}

	c.checker = &contractChecker{
		schemas: compiled,
		logger:  c.logger,
	}
	return nil
}

// checkContract validates a successful response body against the expected schema.
// No-op unless contract checks are enabled.
func (c *Client) checkContract(kind schemaKind, body []byte) {
	if c.checker == nil {
		return
	}

	sch, ok := c.checker.schemas[kind]
	if !ok {
		return
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		c.checker.logger.Warn("backend response is not valid JSON",
			slog.String("schema", string(kind)),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := sch.Validate(value); err != nil {
		c.checker.logger.Warn("backend response does not match expected contract",
			slog.String("schema", string(kind)),
			slog.String("error", err.Error()),
		)
	}
}
