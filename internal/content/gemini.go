package content

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiLookup fetches content from a Gemini model
type GeminiLookup struct {
	client *genai.Client
	config *Config
}

// NewGeminiLookup creates a new Gemini content lookup
func NewGeminiLookup(ctx context.Context, config *Config) (*GeminiLookup, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiLookup{
		client: client,
		config: config,
	}, nil
}

// Lookup asks Gemini for the definition and example sentences
func (l *GeminiLookup) Lookup(ctx context.Context, word string) (string, error) {
	fmt.Fprintf(l.config.logWriter(), "Gemini: Looking up '%s' with model '%s'\n", word, l.config.GeminiModel)

	resp, err := l.client.Models.GenerateContent(ctx, l.config.GeminiModel, genai.Text(BuildPrompt(word)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := cleanResponse(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty content returned for '%s'", word)
	}
	return text, nil
}

// Name returns the provider name
func (l *GeminiLookup) Name() string {
	return "gemini"
}
