package drill

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/wordlist"
)

var (
	// ErrEmptyWordList is returned when the submitted text holds no words
	ErrEmptyWordList = errors.New("word list is empty")

	// ErrNoWordList is returned when a round is requested before any list
	// was submitted
	ErrNoWordList = errors.New("no word list submitted")

	// ErrNoActiveRound is returned when an answer arrives outside a round
	ErrNoActiveRound = errors.New("no active round")

	// ErrSessionCompleted is returned once every word was spelled correctly
	ErrSessionCompleted = errors.New("session completed")
)

// ContentLookup fetches the definition and example sentences for a word
type ContentLookup interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// Synthesizer converts text to speech
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*audio.Clip, error)
}

// Round is the word currently being spelled, with its content and audio
type Round struct {
	Number int
	Word   string
	Text   string
	Clip   *audio.Clip
}

// Result describes the outcome of one spelling attempt
type Result struct {
	Outcome Outcome
	Message string

	// Completed is true for the attempt that finished the session, and
	// only for that one
	Completed bool

	// InputKey changes whenever a new round begins so the answer input can
	// be reset
	InputKey int

	Remaining int
}

// Record is a correctly spelled word kept for export
type Record struct {
	Word     string
	Text     string
	Clip     *audio.Clip
	Attempts int
}

// SessionState is a read-only copy of a session for presentation
type SessionState struct {
	ID             string
	State          State
	Pool           []string
	ActiveWord     string
	Outcome        Outcome
	InputKey       int
	Total          int
	Done           int
	FailedAttempts int
}

// Remaining returns the number of words not yet spelled correctly,
// including the active word
func (s SessionState) Remaining() int {
	n := len(s.Pool)
	if s.ActiveWord != "" {
		n++
	}
	return n
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used to pick words
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.intn = r.IntN
	}
}

// WithTransitionHook registers a function called on every state change
func WithTransitionHook(hook func(from, to State)) Option {
	return func(s *Session) {
		s.hook = hook
	}
}

// Session is the drill controller for one user
type Session struct {
	lookup ContentLookup
	synth  Synthesizer
	intn   func(int) int
	hook   func(from, to State)

	id             string
	state          State
	pool           []string
	active         string
	round          *Round
	outcome        Outcome
	inputKey       int
	total          int
	done           int
	failedAttempts int
	rounds         int
	history        []Record
}

// New creates a session in the NotStarted state
func New(lookup ContentLookup, synth Synthesizer, opts ...Option) *Session {
	s := &Session{
		lookup: lookup,
		synth:  synth,
		intn:   rand.IntN,
		id:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// SubmitWordList parses text into a fresh word pool. Submitting again
// starts a new session; an empty list leaves the session untouched.
func (s *Session) SubmitWordList(text string) error {
	return s.SubmitWords([]string{text})
}

// SubmitWords starts a session from a list of entries, such as the rows of
// a word list file. Each entry is split like a submitted list.
func (s *Session) SubmitWords(words []string) error {
	words = wordlist.Parse(strings.Join(words, "\n"))
	if len(words) == 0 {
		return ErrEmptyWordList
	}
	s.start(words)
	return nil
}

func (s *Session) start(words []string) {
	s.id = uuid.NewString()
	s.pool = words
	s.active = ""
	s.round = nil
	s.outcome = Pending
	s.total = len(words)
	s.done = 0
	s.failedAttempts = 0
	s.rounds = 0
	s.history = nil
	s.inputKey++
	s.transition(AwaitingSelection)
}

// NextRound selects a word and fetches its content and audio. While a round
// is in progress it returns that round unchanged.
//
// When the lookup or synthesis fails the selected word stays active and is
// not returned to the pool; the next call fetches content for it again.
func (s *Session) NextRound(ctx context.Context) (*Round, error) {
	switch s.state {
	case NotStarted:
		return nil, ErrNoWordList
	case Completed:
		return nil, ErrSessionCompleted
	case RoundInProgress:
		return s.round, nil
	}

	if s.active == "" {
		if len(s.pool) == 0 {
			s.transition(Completed)
			return nil, ErrSessionCompleted
		}
		i := s.intn(len(s.pool))
		s.active = s.pool[i]
		s.pool = slices.Delete(s.pool, i, i+1)
		s.failedAttempts = 0
		s.outcome = Pending
	}

	text, err := s.lookup.Lookup(ctx, s.active)
	if err != nil {
		return nil, fmt.Errorf("failed to look up '%s': %w", s.active, err)
	}

	clip, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize audio for '%s': %w", s.active, err)
	}

	s.rounds++
	s.round = &Round{
		Number: s.rounds,
		Word:   s.active,
		Text:   text,
		Clip:   clip,
	}
	s.transition(RoundInProgress)
	return s.round, nil
}

// Current returns the round in progress, or nil
func (s *Session) Current() *Round {
	if s.state != RoundInProgress {
		return nil
	}
	return s.round
}

// CheckSpelling compares answer with the active word, ignoring case and
// surrounding whitespace
func (s *Session) CheckSpelling(answer string) (Result, error) {
	switch s.state {
	case NotStarted:
		return Result{}, ErrNoWordList
	case Completed:
		return Result{}, ErrSessionCompleted
	case RoundInProgress:
	default:
		return Result{}, ErrNoActiveRound
	}

	if !strings.EqualFold(strings.TrimSpace(answer), s.active) {
		s.outcome = Incorrect
		s.failedAttempts++
		s.transition(RoundFailed)
		s.transition(RoundInProgress)
		return s.result(IncorrectMessage, false), nil
	}

	s.outcome = Correct
	s.history = append(s.history, Record{
		Word:     s.round.Word,
		Text:     s.round.Text,
		Clip:     s.round.Clip,
		Attempts: s.failedAttempts + 1,
	})
	s.done++
	s.active = ""
	s.round = nil
	s.transition(RoundSucceeded)

	if len(s.pool) == 0 {
		s.transition(Completed)
		return s.result(CompletionMessage, true), nil
	}

	s.inputKey++
	s.transition(AwaitingSelection)
	return s.result(CorrectMessage, false), nil
}

func (s *Session) result(message string, completed bool) Result {
	return Result{
		Outcome:   s.outcome,
		Message:   message,
		Completed: completed,
		InputKey:  s.inputKey,
		Remaining: s.Snapshot().Remaining(),
	}
}

// Snapshot returns a copy of the session state
func (s *Session) Snapshot() SessionState {
	return SessionState{
		ID:             s.id,
		State:          s.state,
		Pool:           slices.Clone(s.pool),
		ActiveWord:     s.active,
		Outcome:        s.outcome,
		InputKey:       s.inputKey,
		Total:          s.total,
		Done:           s.done,
		FailedAttempts: s.failedAttempts,
	}
}

// History returns the correctly spelled words in order
func (s *Session) History() []Record {
	return slices.Clone(s.history)
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.hook != nil {
		s.hook(from, to)
	}
}
