package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/spellbee/internal/anki"
	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/cli"
	"codeberg.org/snonux/spellbee/internal/content"
	"codeberg.org/snonux/spellbee/internal/drill"
	"codeberg.org/snonux/spellbee/internal/gui"
	"codeberg.org/snonux/spellbee/internal/player"
	"codeberg.org/snonux/spellbee/internal/tui"
	"codeberg.org/snonux/spellbee/internal/wordlist"
)

// Processor builds drill sessions from the command line flags
type Processor struct {
	flags *cli.Flags
	out   io.Writer
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags, out: os.Stdout}
}

func (p *Processor) contentConfig(log io.Writer) *content.Config {
	return &content.Config{
		Provider:        p.flags.LLMProvider,
		OpenAIKey:       cli.GetOpenAIKey(),
		OpenAIModel:     p.flags.LLMModel,
		GeminiKey:       cli.GetGeminiKey(),
		GeminiModel:     p.flags.GeminiModel,
		BreakerFailures: p.flags.BreakerFailures,
		Log:             log,
	}
}

func (p *Processor) audioConfig(log io.Writer) *audio.Config {
	return &audio.Config{
		Provider:        "openai",
		OutputFormat:    p.flags.AudioFormat,
		OpenAIKey:       cli.GetOpenAIKey(),
		OpenAIModel:     p.flags.TTSModel,
		OpenAIVoice:     p.flags.TTSVoice,
		OpenAISpeed:     p.flags.TTSSpeed,
		BreakerFailures: p.flags.BreakerFailures,
		Log:             log,
	}
}

// NewSession creates a drill session backed by the configured content and
// speech providers
func (p *Processor) NewSession(ctx context.Context, log io.Writer) (*drill.Session, error) {
	lookup, err := content.NewLookup(ctx, p.contentConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create content lookup: %w", err)
	}

	synth, err := audio.NewProvider(p.audioConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	return newSession(lookup, synth)
}

// newSession checks that the speech provider is usable before the first
// round needs it
func newSession(lookup drill.ContentLookup, synth audio.Provider) (*drill.Session, error) {
	if err := synth.IsAvailable(); err != nil {
		return nil, fmt.Errorf("audio provider %s is not available: %w", synth.Name(), err)
	}
	return drill.New(lookup, synth), nil
}

// LoadWords returns the initial word list text from --words or the word
// file given as argument. Both empty is not an error.
func (p *Processor) LoadWords(args []string) (string, error) {
	text := p.flags.Words
	if len(args) == 0 {
		return text, nil
	}

	words, err := wordlist.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", fmt.Errorf("no words found in %s", args[0])
	}

	if text != "" {
		text += "\n"
	}
	return text + strings.Join(words, "\n"), nil
}

// Cards converts spelled words into Anki cards. The word is masked in the
// definition so the card does not reveal its answer.
func Cards(records []drill.Record) []anki.Card {
	cards := make([]anki.Card, 0, len(records))
	for _, r := range records {
		notes := "Spelled correctly on the first attempt"
		if r.Attempts > 1 {
			notes = fmt.Sprintf("Spelled correctly after %d attempts", r.Attempts)
		}
		cards = append(cards, anki.Card{
			Word:       r.Word,
			Definition: drill.MaskWord(r.Text, r.Word),
			Audio:      r.Clip,
			Notes:      notes,
		})
	}
	return cards
}

// ExportRecords writes the spelled words to an Anki package or CSV file
func (p *Processor) ExportRecords(path string, records []drill.Record) error {
	summary, err := anki.Export(path, p.flags.DeckName, Cards(records))
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	fmt.Fprintf(p.out, "Exported %d words (%d with audio) to %s\n", summary.Cards, summary.WithAudio, path)
	return nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode(initialWords string) error {
	guiConfig := &gui.Config{
		NewSession: func(log io.Writer) (*drill.Session, error) {
			return p.NewSession(context.Background(), log)
		},
		Export:        p.ExportRecords,
		ExportPath:    p.flags.ExportPath,
		DeckName:      p.flags.DeckName,
		InitialWords:  initialWords,
		PlayerCommand: p.flags.Player,
		AutoPlay:      !p.flags.NoAutoPlay, // --no-auto-play disables auto-play
		ShowText:      p.flags.ShowText,
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}

// RunTUIMode runs the drill in the terminal. Provider progress goes to
// --log-file, or nowhere, so it does not garble the screen.
func (p *Processor) RunTUIMode(ctx context.Context, initialWords string) error {
	var log io.Writer = io.Discard
	if p.flags.LogFile != "" {
		f, err := os.OpenFile(p.flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log = f
	}

	session, err := p.NewSession(ctx, log)
	if err != nil {
		return err
	}

	return tui.Run(ctx, &tui.Config{
		Session:      session,
		Player:       player.New(p.flags.Player),
		InitialWords: initialWords,
		AutoPlay:     !p.flags.NoAutoPlay,
		ShowText:     p.flags.ShowText,
		Export: func(path string, records []drill.Record) error {
			_, err := anki.Export(path, p.flags.DeckName, Cards(records))
			return err
		},
		ExportPath: p.flags.ExportPath,
	})
}
