package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/drill"
)

type phase int

const (
	phaseList phase = iota
	phaseLoading
	phaseAnswer
	phaseRoundError
	phaseDone
)

// ClipPlayer plays audio clips
type ClipPlayer interface {
	Play(ctx context.Context, clip *audio.Clip) error
	Stop()
}

// Config holds the terminal UI configuration
type Config struct {
	Session      *drill.Session
	Player       ClipPlayer
	InitialWords string
	AutoPlay     bool
	ShowText     bool

	// Export writes completed words to ExportPath when the session
	// completes. Nil or an empty path disables exporting.
	Export     func(path string, records []drill.Record) error
	ExportPath string
}

type roundMsg struct {
	round *drill.Round
	err   error
}

// playedMsg reports the end of a playback started in round
type playedMsg struct {
	round int
	err   error
}

// Model is the bubbletea model of the drill
type Model struct {
	config  *Config
	ctx     context.Context
	session *drill.Session

	phase    phase
	input    textinput.Model
	spinner  spinner.Model
	round    *drill.Round
	inputKey int
	snap     drill.SessionState

	message   string
	outcome   drill.Outcome
	err       error
	playErr   error
	exportMsg string
}

// New creates the model. With initial words the drill starts right away.
func New(ctx context.Context, config *Config) *Model {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:  config,
		ctx:     ctx,
		session: config.Session,
		input:   ti,
		spinner: sp,
	}
	m.toListPhase()

	if config.InitialWords != "" {
		m.input.SetValue(config.InitialWords)
		m.submitList()
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return tea.Batch(textinput.Blink, m.spinner.Tick, m.nextRound())
	}
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.config.Player.Stop()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case roundMsg:
		return m, m.onRound(msg)

	case playedMsg:
		if m.round != nil && msg.round == m.round.Number {
			m.playErr = msg.err
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseList:
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.submitList() {
				return m, tea.Batch(m.spinner.Tick, m.nextRound())
			}
			return m, nil
		}

	case phaseLoading:
		if msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		return m, nil

	case phaseAnswer:
		switch msg.Type {
		case tea.KeyEsc:
			m.config.Player.Stop()
			return m, tea.Quit
		case tea.KeyCtrlR:
			return m, m.play()
		case tea.KeyEnter:
			return m, m.check()
		}

	case phaseRoundError:
		switch msg.String() {
		case "enter", "r":
			m.phase = phaseLoading
			return m, tea.Batch(m.spinner.Tick, m.nextRound())
		case "esc", "q":
			return m, tea.Quit
		}
		return m, nil

	case phaseDone:
		switch msg.String() {
		case "enter", "esc", "q":
			return m, tea.Quit
		case "n":
			m.toListPhase()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) toListPhase() {
	m.phase = phaseList
	m.input.Reset()
	m.input.Placeholder = "cat, dog, fish..."
	m.input.Prompt = "Words: "
	m.round = nil
	m.err = nil
}

// submitList starts a fresh session and reports whether it succeeded
func (m *Model) submitList() bool {
	if err := m.session.SubmitWordList(m.input.Value()); err != nil {
		m.message = drill.EmptyListMessage
		if !errors.Is(err, drill.ErrEmptyWordList) {
			m.message = err.Error()
		}
		m.outcome = drill.Pending
		return false
	}

	m.message = ""
	m.exportMsg = ""
	m.snap = m.session.Snapshot()
	m.inputKey = m.snap.InputKey
	m.input.Reset()
	m.input.Placeholder = "Type the word you heard..."
	m.input.Prompt = "> "
	m.phase = phaseLoading
	return true
}

// nextRound fetches the next round outside the update loop. The session is
// not touched by Update while the phase is phaseLoading.
func (m *Model) nextRound() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		round, err := session.NextRound(ctx)
		return roundMsg{round: round, err: err}
	}
}

func (m *Model) onRound(msg roundMsg) tea.Cmd {
	m.snap = m.session.Snapshot()
	switch {
	case errors.Is(msg.err, drill.ErrSessionCompleted):
		return m.complete()
	case msg.err != nil:
		m.phase = phaseRoundError
		m.err = msg.err
		return nil
	}

	m.phase = phaseAnswer
	m.round = msg.round
	m.err = nil
	m.playErr = nil
	if m.config.AutoPlay {
		return m.play()
	}
	return nil
}

func (m *Model) play() tea.Cmd {
	round := m.session.Current()
	if round == nil {
		return nil
	}
	p := m.config.Player
	ctx := m.ctx
	return func() tea.Msg {
		return playedMsg{round: round.Number, err: p.Play(ctx, round.Clip)}
	}
}

func (m *Model) check() tea.Cmd {
	result, err := m.session.CheckSpelling(m.input.Value())
	if err != nil {
		m.message = err.Error()
		if errors.Is(err, drill.ErrNoWordList) {
			m.message = drill.NoWordListMessage
		}
		m.outcome = drill.Pending
		return nil
	}

	m.message = result.Message
	m.outcome = result.Outcome
	m.snap = m.session.Snapshot()
	if result.InputKey != m.inputKey {
		m.inputKey = result.InputKey
		m.input.Reset()
	}

	switch {
	case result.Completed:
		return m.complete()
	case result.Outcome == drill.Correct:
		m.config.Player.Stop()
		m.round = nil
		m.phase = phaseLoading
		return tea.Batch(m.spinner.Tick, m.nextRound())
	}
	return nil
}

func (m *Model) complete() tea.Cmd {
	m.config.Player.Stop()
	m.phase = phaseDone
	m.round = nil
	m.message = drill.CompletionMessage
	m.outcome = drill.Correct

	if m.config.Export != nil && m.config.ExportPath != "" {
		if err := m.config.Export(m.config.ExportPath, m.session.History()); err != nil {
			m.exportMsg = fmt.Sprintf("Export failed: %v", err)
		} else {
			m.exportMsg = fmt.Sprintf("Anki deck written to %s", m.config.ExportPath)
		}
	}
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("spellbee"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseList:
		b.WriteString("Enter the words to practise, separated by commas or spaces.\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.message != "" {
			b.WriteString("\n" + styleIncorrect.Render(m.message) + "\n")
		}
		b.WriteString("\n" + styleSubtle.Render("enter: start • esc: quit"))

	case phaseLoading:
		b.WriteString(m.progressView())
		if m.message != "" {
			b.WriteString(m.messageView() + "\n\n")
		}
		b.WriteString(m.spinner.View() + " Looking up the next word...\n")

	case phaseAnswer:
		b.WriteString(m.progressView())
		b.WriteString(fmt.Sprintf("Round %d\n", m.round.Number))
		if m.config.ShowText {
			b.WriteString(styleText.Render(drill.MaskWord(m.round.Text, m.round.Word)))
			b.WriteString("\n")
		} else {
			b.WriteString(styleSubtle.Render("Listen to the definition and type the word.") + "\n")
		}
		b.WriteString("\n" + m.input.View() + "\n")
		if m.message != "" {
			b.WriteString("\n" + m.messageView() + "\n")
		}
		if m.playErr != nil {
			b.WriteString(styleError.Render(fmt.Sprintf("Playback failed: %v", m.playErr)) + "\n")
		}
		b.WriteString("\n" + styleSubtle.Render("enter: check • ctrl+r: replay • esc: quit"))

	case phaseRoundError:
		b.WriteString(m.progressView())
		b.WriteString(styleError.Render(fmt.Sprintf("Could not prepare the word: %v", m.err)))
		b.WriteString("\n" + styleSubtle.Render("enter/r: try again • esc/q: quit"))

	case phaseDone:
		b.WriteString(m.progressView())
		b.WriteString(styleCorrect.Render(drill.CompletionMessage) + "\n")
		if m.exportMsg != "" {
			b.WriteString("\n" + m.exportMsg + "\n")
		}
		b.WriteString("\n" + styleSubtle.Render("n: new list • enter/q: quit"))
	}

	return b.String() + "\n"
}

func (m *Model) messageView() string {
	switch m.outcome {
	case drill.Correct:
		return styleCorrect.Render(m.message)
	case drill.Incorrect:
		return styleIncorrect.Render(m.message)
	default:
		return m.message
	}
}

// progressView renders the cached snapshot. The session itself may be
// busy in a lookup command.
func (m *Model) progressView() string {
	snap := m.snap
	if snap.Total == 0 {
		return ""
	}

	const width = 30
	done := snap.Done * width / snap.Total
	bar := styleBarDone.Render(strings.Repeat("█", done)) + styleBarTodo.Render(strings.Repeat("░", width-done))

	line := fmt.Sprintf("%s %d/%d spelled", bar, snap.Done, snap.Total)
	if snap.FailedAttempts > 0 {
		line += styleSubtle.Render(fmt.Sprintf(" (%d failed attempts)", snap.FailedAttempts))
	}
	return line + "\n\n"
}

// Run starts the terminal UI and blocks until the user quits
func Run(ctx context.Context, config *Config) error {
	p := tea.NewProgram(New(ctx, config), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
