package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lookup fetches the definition and example sentences for a word
type Lookup interface {
	// Lookup returns free text: the word, a definition and two example
	// sentences, each on its own line
	Lookup(ctx context.Context, word string) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds the content provider configuration
type Config struct {
	Provider string // "openai" or "gemini"

	OpenAIKey     string
	OpenAIBaseURL string // Optional, for OpenAI compatible endpoints
	OpenAIModel   string

	GeminiKey   string
	GeminiModel string

	// BreakerFailures is the number of consecutive failures that opens the
	// circuit. Zero disables the circuit breaker.
	BreakerFailures uint32

	// Log receives progress messages, os.Stdout when nil
	Log io.Writer
}

// DefaultConfig returns the default content configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-3.5-turbo",
		GeminiModel: "gemini-2.0-flash",
	}
}

func (c *Config) logWriter() io.Writer {
	if c.Log == nil {
		return os.Stdout
	}
	return c.Log
}

// NewLookup creates the content provider selected by config. When
// BreakerFailures is set the provider is wrapped in a circuit breaker.
func NewLookup(ctx context.Context, config *Config) (Lookup, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var lookup Lookup
	switch strings.ToLower(config.Provider) {
	case "openai", "":
		l, err := NewOpenAILookup(config)
		if err != nil {
			return nil, err
		}
		lookup = l

	case "gemini":
		l, err := NewGeminiLookup(ctx, config)
		if err != nil {
			return nil, err
		}
		lookup = l

	default:
		return nil, fmt.Errorf("unknown content provider: %s", config.Provider)
	}

	if config.BreakerFailures > 0 {
		lookup = NewBreakerLookup(lookup, config.BreakerFailures, config.logWriter())
	}
	return lookup, nil
}

// cleanResponse trims the model output and drops blank lines so the text
// reads as one line per item
func cleanResponse(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
