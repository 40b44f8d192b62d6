package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister. baseURL may be empty.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
		out:    os.Stdout,
	}
}

// SetOutput redirects the listing, stdout by default
func (l *Lister) SetOutput(w io.Writer) {
	l.out = w
}

// Categories holds model IDs grouped by purpose
type Categories struct {
	Speech []string
	Chat   []string
}

// Categorize sorts model IDs into speech and chat models. Other models
// (images, embeddings, moderation) are dropped.
func Categorize(ids []string) Categories {
	var c Categories
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"):
			c.Speech = append(c.Speech, id)
		case strings.Contains(id, "audio"), strings.Contains(id, "realtime"), strings.Contains(id, "transcribe"):
			// Audio chat models cannot be used for either purpose here
		case strings.HasPrefix(id, "gpt-"), strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"), strings.Contains(id, "chat"):
			c.Chat = append(c.Chat, id)
		}
	}
	sort.Strings(c.Speech)
	sort.Strings(c.Chat)
	return c
}

// ListAvailableModels prints the speech and chat models for the key
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .spellbee.yaml")
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, model := range list.Models {
		ids = append(ids, model.ID)
	}
	c := Categorize(ids)

	fmt.Fprintln(l.out, "Available OpenAI Models:")
	printSection(l.out, "Text-to-Speech Models (--tts-model):", c.Speech)
	printSection(l.out, "Chat Models for word lookups (--llm-model):", c.Chat)
	return nil
}

func printSection(w io.Writer, title string, ids []string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  None found")
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
