package assistant

import (
	"context"
	"fmt"

	"agrioptimize.backend/internal/domain/entities"
	"google.golang.org/genai"
)

// Generation parameters match the values the mobile clients were tuned
// against.
const (
	generationTemperature     = 1.0
	generationTopP            = 0.95
	generationTopK            = 40
	generationMaxOutputTokens = 8192
)

// GeminiGenerator produces assistant replies through the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed text generator
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends the conversation history followed by prompt and returns the
// model's reply text.
func (g *GeminiGenerator) Generate(ctx context.Context, history []entities.ConversationTurn, prompt string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == entities.TurnRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](generationTemperature),
		TopP:            genai.Ptr[float32](generationTopP),
		TopK:            genai.Ptr[float32](generationTopK),
		MaxOutputTokens: generationMaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return text, nil
}
