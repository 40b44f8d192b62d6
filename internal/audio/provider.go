package audio

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// Synthesize turns text into an in-memory audio clip
	Synthesize(ctx context.Context, text string) (*Clip, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider     string // Provider name: "openai"
	OutputFormat string // Output format: "wav" or "mp3"

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIBaseURL string  // Optional, for OpenAI compatible endpoints
	OpenAIModel   string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice   string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed   float64 // 0.25 to 4.0

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit. Zero disables the circuit breaker.
	BreakerFailures uint32

	// Log receives progress messages, os.Stdout when nil
	Log io.Writer
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:     "openai",
		OutputFormat: "wav",
		OpenAIModel:  "tts-1",
		OpenAIVoice:  "alloy",
		OpenAISpeed:  1.0,
	}
}

func (c *Config) logWriter() io.Writer {
	if c.Log == nil {
		return os.Stdout
	}
	return c.Log
}

// NewProvider creates the appropriate audio provider based on configuration.
// When BreakerFailures is set the provider is wrapped in a circuit breaker.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var provider Provider
	switch config.Provider {
	case "openai", "":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		provider = p

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}

	if config.BreakerFailures > 0 {
		provider = NewBreakerProvider(provider, config.BreakerFailures, config.logWriter())
	}
	return provider, nil
}
