package script

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/podgen/podgen/podcast"
)

// generators wrap JSON in markdown fences no matter how firmly the prompt says not to
var (
	fenceOpenRE  = regexp.MustCompile("^```(?:json)?\\s*")
	fenceCloseRE = regexp.MustCompile("\\s*```$")
)

// StripCodeFences removes a wrapping markdown code fence and surrounding
// whitespace from generated text
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = fenceOpenRE.ReplaceAllString(text, "")
	text = fenceCloseRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ParseScript strips code fences and decodes generator output into a script.
// Output that is not a JSON object comes back as a *SchemaError, malformed
// JSON as a wrapped decode error; the orchestrator treats both the same way.
func ParseScript(raw string) (*podcast.Script, error) {
	cleaned := StripCodeFences(raw)
	if !strings.HasPrefix(cleaned, "{") {
		return nil, schemaErrorf("script is not a JSON object")
	}
	var s podcast.Script
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return nil, fmt.Errorf("failed to parse script JSON: %w", err)
	}
	return &s, nil
}
