package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Generator creates CSV import files. Audio clips are written into a media
// folder next to the CSV file.
type Generator struct {
	outputPath string
	cards      []Card
}

// NewGenerator creates a CSV generator writing to outputPath
func NewGenerator(outputPath string) *Generator {
	return &Generator{outputPath: outputPath}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// MediaDir returns the folder the audio files are written to
func (g *Generator) MediaDir() string {
	return filepath.Join(filepath.Dir(g.outputPath), "collection.media")
}

// GenerateCSV writes the CSV file and the audio media files
func (g *Generator) GenerateCSV() error {
	names := mediaNames(g.cards)
	if err := g.writeMedia(names); err != nil {
		return err
	}

	file, err := os.Create(g.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"Word", "Definition", "Audio", "Notes"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, card := range g.cards {
		record := []string{
			card.Word,
			definitionHTML(card.Definition),
			soundField(names[i]),
			card.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

func (g *Generator) writeMedia(names []string) error {
	mediaDir := g.MediaDir()
	created := false

	for i, card := range g.cards {
		if names[i] == "" {
			continue
		}
		if !created {
			if err := os.MkdirAll(mediaDir, 0755); err != nil {
				return fmt.Errorf("failed to create media directory: %w", err)
			}
			created = true
		}
		if err := os.WriteFile(filepath.Join(mediaDir, names[i]), card.Audio.Data, 0644); err != nil {
			return fmt.Errorf("failed to write audio for '%s': %w", card.Word, err)
		}
	}
	return nil
}

// Stats returns the number of cards and how many of them carry audio
func (g *Generator) Stats() (totalCards, withAudio int) {
	return len(g.cards), countAudio(g.cards)
}
