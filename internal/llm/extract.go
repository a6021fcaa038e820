package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeTimetable parses the model's text output as a GenerateResponse.
// Models sometimes wrap JSON in a markdown code fence despite being asked for
// bare JSON, so a leading ``` or ```json fence is stripped first. The decoded
// timetable itself is not checked against any scheduling rules.
func decodeTimetable(text string) (*GenerateResponse, error) {
	cleaned := stripCodeFence(text)

	var resp GenerateResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("decode timetable JSON: %w", err)
	}
	if resp.Timetable == nil {
		return nil, fmt.Errorf("model output has no timetable object")
	}
	return &resp, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without a
// language tag. Text without a fence is returned trimmed.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
