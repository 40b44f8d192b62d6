package content

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"
)

// OpenAILookup fetches content from an OpenAI chat model
type OpenAILookup struct {
	client *openai.Client
	config *Config
}

// NewOpenAILookup creates a new OpenAI content lookup
func NewOpenAILookup(config *Config) (*OpenAILookup, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &OpenAILookup{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Lookup asks the chat model for the definition and example sentences
func (l *OpenAILookup) Lookup(ctx context.Context, word string) (string, error) {
	fmt.Fprintf(l.config.logWriter(), "OpenAI chat: Looking up '%s' with model '%s'\n", word, l.config.OpenAIModel)

	req := openai.ChatCompletionRequest{
		Model: l.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(word),
			},
		},
		// A zero temperature is dropped by omitempty
		Temperature: math.SmallestNonzeroFloat32,
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content returned for '%s'", word)
	}

	text := cleanResponse(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty content returned for '%s'", word)
	}
	return text, nil
}

// Name returns the provider name
func (l *OpenAILookup) Name() string {
	return "openai"
}
