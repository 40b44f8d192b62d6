package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/spellbee/internal/audio"
)

// MockLookup mocks the content lookup
type MockLookup struct {
	Contents map[string]string
	Errors   map[string]error
	Calls    []string
}

// Lookup mocks fetching definition and example sentences for a word
func (m *MockLookup) Lookup(ctx context.Context, word string) (string, error) {
	m.Calls = append(m.Calls, word)

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if text, ok := m.Contents[word]; ok {
		return text, nil
	}

	// Default response in the shape the chat model returns
	return fmt.Sprintf("%s\nDefinition of %s.\nFirst example with %s.\nSecond example with %s.", word, word, word, word), nil
}

// Name returns the mock provider name
func (m *MockLookup) Name() string {
	return "mock"
}

// MockSynthesizer mocks the speech synthesis provider
type MockSynthesizer struct {
	Format      string
	Errors      map[string]error
	Unavailable error // Returned by IsAvailable
	Calls       []string
}

// Synthesize mocks converting text to speech
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) (*audio.Clip, error) {
	m.Calls = append(m.Calls, text)

	if err, ok := m.Errors[text]; ok {
		return nil, err
	}

	format := m.Format
	if format == "" {
		format = "wav"
	}

	var g TestDataGenerator
	return &audio.Clip{Data: g.GenerateAudioData(), Format: format}, nil
}

// Name returns the mock provider name
func (m *MockSynthesizer) Name() string {
	return "mock"
}

// IsAvailable returns the configured availability error
func (m *MockSynthesizer) IsAvailable() error {
	return m.Unavailable
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// GenerateWords returns a small word list
func (g *TestDataGenerator) GenerateWords() []string {
	return []string{"apple", "banana", "rhythm", "necessary", "accommodate"}
}

// GenerateAudioData generates mock audio data
func (g *TestDataGenerator) GenerateAudioData() []byte {
	// RIFF header of a WAV file
	return []byte{'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00, 'W', 'A', 'V', 'E'}
}
