// Package anki exports completed drill rounds as Anki decks, either as an
// .apkg package or as a CSV file with the audio written next to it.
package anki

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/spellbee/internal"
	"codeberg.org/snonux/spellbee/internal/audio"
)

// DefaultDeckName is used when no deck name is configured
const DefaultDeckName = "Spelling Bee"

// Card is one spelled word with its content and pronunciation
type Card struct {
	Word       string      // The word to spell
	Definition string      // Definition and example sentences
	Audio      *audio.Clip // Spoken definition, optional
	Notes      string      // Optional notes
}

// mediaNames assigns every card with audio a unique media file name. Cards
// without audio get "".
func mediaNames(cards []Card) []string {
	names := make([]string, len(cards))
	seen := make(map[string]bool)
	for i, card := range cards {
		if card.Audio.Len() == 0 {
			continue
		}
		stem := internal.GenerateMediaName(card.Word)
		name := stem + card.Audio.Extension()
		for n := 1; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d%s", stem, n, card.Audio.Extension())
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// soundField formats an audio reference the way Anki expects it
func soundField(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("[sound:%s]", name)
}

// definitionHTML turns multi-line lookup text into HTML lines
func definitionHTML(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", "<br>")
}

// FileName returns the default package file name for a deck
func FileName(deckName string) string {
	if deckName == "" {
		deckName = DefaultDeckName
	}
	return strings.ToLower(internal.SanitizeFilename(deckName)) + ".apkg"
}

// Summary describes a written export
type Summary struct {
	Cards     int
	WithAudio int
}

func countAudio(cards []Card) int {
	n := 0
	for _, card := range cards {
		if card.Audio.Len() > 0 {
			n++
		}
	}
	return n
}

// Export writes cards to path. The format is chosen by extension: .csv
// writes a CSV import file, anything else an .apkg package.
func Export(path, deckName string, cards []Card) (Summary, error) {
	if len(cards) == 0 {
		return Summary{}, fmt.Errorf("no cards to export")
	}
	if deckName == "" {
		deckName = DefaultDeckName
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		gen := NewGenerator(path)
		for _, card := range cards {
			gen.AddCard(card)
		}
		if err := gen.GenerateCSV(); err != nil {
			return Summary{}, err
		}
		total, withAudio := gen.Stats()
		return Summary{Cards: total, WithAudio: withAudio}, nil
	}

	gen := NewAPKGGenerator(deckName)
	for _, card := range cards {
		gen.AddCard(card)
	}
	if err := gen.GenerateAPKG(path); err != nil {
		return Summary{}, err
	}
	return Summary{Cards: len(cards), WithAudio: countAudio(cards)}, nil
}
