package audio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// speechClient is the part of the OpenAI client the provider uses
type speechClient interface {
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client speechClient
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Synthesize generates speech for text using OpenAI TTS and returns it in memory
func (p *OpenAIProvider) Synthesize(ctx context.Context, text string) (*Clip, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	format, responseFormat := p.responseFormat()

	fmt.Fprintf(p.config.logWriter(), "OpenAI TTS: Using model '%s' with voice '%s' at speed %.2f (%s)\n",
		p.config.OpenAIModel, p.config.OpenAIVoice, p.config.OpenAISpeed, format)

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: responseFormat,
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no audio data received from OpenAI")
	}

	return &Clip{Data: data, Format: format}, nil
}

// responseFormat maps the configured output format to the API format
func (p *OpenAIProvider) responseFormat() (string, openai.SpeechResponseFormat) {
	switch strings.ToLower(p.config.OutputFormat) {
	case "mp3":
		return "mp3", openai.SpeechResponseFormatMp3
	case "opus":
		return "opus", openai.SpeechResponseFormatOpus
	case "aac":
		return "aac", openai.SpeechResponseFormatAac
	case "flac":
		return "flac", openai.SpeechResponseFormatFlac
	default:
		return "wav", openai.SpeechResponseFormatWav
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// Only the key is checked, no request is made
	return nil
}
