package grader

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// verdictSchema is sent to the service as the structured-output contract and
// checked locally before a reply is accepted.
const verdictSchema = `{
  "type": "object",
  "properties": {
    "is_correct": {"type": "boolean"},
    "explanation": {"type": "string"},
    "improvement_tips": {"type": "string"}
  },
  "required": ["is_correct", "explanation", "improvement_tips"],
  "additionalProperties": false
}`

var verdictSchemaLoader = gojsonschema.NewStringLoader(verdictSchema)

// parseVerdict extracts the JSON object from an LLM reply, validates it
// against verdictSchema and decodes it.
func parseVerdict(content string) (Verdict, error) {
	jsonStr := extractJSON(content)
	if jsonStr == "" {
		return Verdict{}, &AnalysisError{Kind: ErrMalformedResponse, Reason: "no JSON object found in LLM response"}
	}

	result, err := gojsonschema.Validate(verdictSchemaLoader, gojsonschema.NewStringLoader(jsonStr))
	if err != nil {
		return Verdict{}, &AnalysisError{Kind: ErrMalformedResponse, Reason: "invalid JSON from LLM", Wrapped: err}
	}
	if !result.Valid() {
		var messages []string
		for _, e := range result.Errors() {
			messages = append(messages, e.String())
		}
		return Verdict{}, &AnalysisError{
			Kind:   ErrMalformedResponse,
			Reason: "schema validation failed: " + strings.Join(messages, "; "),
		}
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(jsonStr), &verdict); err != nil {
		return Verdict{}, &AnalysisError{Kind: ErrMalformedResponse, Reason: "invalid JSON from LLM", Wrapped: err}
	}
	return verdict, nil
}
