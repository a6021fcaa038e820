package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/chalkline/chalkline/internal/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiGenerator struct {
	client       *genai.Client
	model        string
	promptCustom string
}

func newGeminiGenerator(cfg *config.Config) (*geminiGenerator, error) {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.LLM.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:       client,
		model:        model,
		promptCustom: cfg.LLM.Prompt,
	}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	prompt, err := renderPrompt(g.promptCustom, req)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	return decodeTimetable(text)
}
