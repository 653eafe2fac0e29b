package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const resultSchema = `{
  "type": "object",
  "properties": {
    "improvedResume": {"type": "string", "minLength": 1},
    "coverLetter": {"type": "string", "minLength": 1}
  },
  "required": ["improvedResume", "coverLetter"]
}`

var resultSchemaLoader = gojsonschema.NewStringLoader(resultSchema)

// ParseResult validates raw provider output against the response schema and
// decodes it. Markdown code fences around the JSON are tolerated; anything
// else that is not a two-field object fails with ErrMalformedResponse.
func ParseResult(raw string) (ImprovementResult, error) {
	cleaned := stripCodeFence(raw)
	if strings.TrimSpace(cleaned) == "" {
		return ImprovementResult{}, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	validation, err := gojsonschema.Validate(resultSchemaLoader, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return ImprovementResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !validation.Valid() {
		issues := make([]string, 0, len(validation.Errors()))
		for _, issue := range validation.Errors() {
			issues = append(issues, issue.String())
		}
		return ImprovementResult{}, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(issues, "; "))
	}

	var result ImprovementResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return ImprovementResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return result, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
