package llm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"text/template"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// PromptData holds the variables available in the prompt template.
type PromptData struct {
	SchoolData string
}

// renderPrompt serializes the request and executes the prompt template.
// If customTemplate is non-empty it is used instead of the embedded default.
func renderPrompt(customTemplate string, req GenerateRequest) (string, error) {
	src := defaultPromptTemplate
	if customTemplate != "" {
		src = customTemplate
	}

	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("prompt").Parse(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PromptData{SchoolData: string(data)}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
