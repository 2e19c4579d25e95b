// Package codec converts between the bot platform's JSON wire format and the
// advisor's domain types.
//
//   - Entry point receives bytes -> DecodeEvent() -> IntentRequest
//   - Dispatcher returns Response -> EncodeResponse() -> bytes
//   - Dispatcher returns error -> WriteError() / FormatError()
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// eventSchema describes the fields the advisor reads. Unknown fields are
// allowed so full platform events validate unchanged.
const eventSchema = `{
	"type": "object",
	"required": ["currentIntent"],
	"properties": {
		"invocationSource": {"type": "string"},
		"currentIntent": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"},
				"slots": {
					"type": ["object", "null"],
					"additionalProperties": {"type": ["string", "null"]}
				}
			}
		},
		"sessionAttributes": {
			"type": ["object", "null"],
			"additionalProperties": {"type": "string"}
		},
		"requestAttributes": {
			"type": ["object", "null"],
			"additionalProperties": {"type": "string"}
		}
	}
}`

var compiledEventSchema = jsonschema.MustCompileString("lex-event.json", eventSchema)

// DecodeEvent parses and validates an intent event.
func DecodeEvent(data []byte) (*domain.IntentRequest, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.ErrInvalidRequest(fmt.Sprintf("event is not valid JSON: %v", err)).
			WithCode(domain.ErrorCodeMalformedEvent).
			WithCause(err)
	}

	if err := compiledEventSchema.Validate(raw); err != nil {
		return nil, domain.ErrInvalidRequest(fmt.Sprintf("event does not match schema: %v", err)).
			WithCode(domain.ErrorCodeSchemaViolation).
			WithCause(err)
	}

	var req domain.IntentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, domain.ErrInvalidRequest(fmt.Sprintf("decode event: %v", err)).
			WithCode(domain.ErrorCodeMalformedEvent).
			WithCause(err)
	}
	return &req, nil
}

// EncodeResponse serializes a dialog action response.
func EncodeResponse(resp *domain.Response) ([]byte, error) {
	if resp == nil {
		return nil, fmt.Errorf("encode response: nil response")
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return data, nil
}
