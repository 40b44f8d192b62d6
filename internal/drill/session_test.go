package drill

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/spellbee/internal/testutil"
)

// pickLast always selects the last word of the pool
func pickLast() Option {
	return func(s *Session) {
		s.intn = func(n int) int { return n - 1 }
	}
}

func newTestSession(opts ...Option) (*Session, *testutil.MockLookup, *testutil.MockSynthesizer) {
	lookup := &testutil.MockLookup{}
	synth := &testutil.MockSynthesizer{}
	return New(lookup, synth, opts...), lookup, synth
}

func TestSession_AppleBanana(t *testing.T) {
	var transitions []State
	session, lookup, synth := newTestSession(pickLast(), WithTransitionHook(func(from, to State) {
		transitions = append(transitions, to)
	}))
	ctx := context.Background()

	require.NoError(t, session.SubmitWordList("apple, banana"))
	assert.Equal(t, AwaitingSelection, session.State())
	assert.Equal(t, []string{"apple", "banana"}, session.Snapshot().Pool)

	round, err := session.NextRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, "banana", round.Word)
	assert.Equal(t, []string{"apple"}, session.Snapshot().Pool)
	assert.Equal(t, "banana", session.Snapshot().ActiveWord)

	result, err := session.CheckSpelling("banan")
	require.NoError(t, err)
	assert.Equal(t, Incorrect, result.Outcome)
	assert.Equal(t, IncorrectMessage, result.Message)
	assert.False(t, result.Completed)
	assert.Equal(t, RoundInProgress, session.State())
	assert.Equal(t, []string{"apple"}, session.Snapshot().Pool)
	assert.Equal(t, "banana", session.Snapshot().ActiveWord)

	result, err = session.CheckSpelling("banana")
	require.NoError(t, err)
	assert.Equal(t, Correct, result.Outcome)
	assert.Equal(t, CorrectMessage, result.Message)
	assert.False(t, result.Completed)
	assert.Equal(t, AwaitingSelection, session.State())

	round, err = session.NextRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, "apple", round.Word)
	assert.Empty(t, session.Snapshot().Pool)

	result, err = session.CheckSpelling("apple")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, CompletionMessage, result.Message)
	assert.Equal(t, Completed, session.State())

	assert.Equal(t, []State{
		AwaitingSelection,
		RoundInProgress,
		RoundFailed,
		RoundInProgress,
		RoundSucceeded,
		AwaitingSelection,
		RoundInProgress,
		RoundSucceeded,
		Completed,
	}, transitions)

	// Content and audio are fetched once per selection, not per attempt
	assert.Equal(t, []string{"banana", "apple"}, lookup.Calls)
	assert.Len(t, synth.Calls, 2)

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, "banana", history[0].Word)
	assert.Equal(t, 2, history[0].Attempts)
	assert.Equal(t, "apple", history[1].Word)
	assert.Equal(t, 1, history[1].Attempts)
}

func TestSession_SubmitWordList(t *testing.T) {
	session, _, _ := newTestSession()

	err := session.SubmitWordList(" ,\n\t ")
	assert.ErrorIs(t, err, ErrEmptyWordList)
	assert.Equal(t, NotStarted, session.State())

	require.NoError(t, session.SubmitWordList("cat, dog\n\nfish"))
	snap := session.Snapshot()
	assert.Equal(t, []string{"cat", "dog", "fish"}, snap.Pool)
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, 3, snap.Remaining())

	// An empty resubmission leaves the running session alone
	assert.ErrorIs(t, session.SubmitWordList(""), ErrEmptyWordList)
	assert.Equal(t, []string{"cat", "dog", "fish"}, session.Snapshot().Pool)
}

func TestSession_ResubmitStartsFresh(t *testing.T) {
	session, _, _ := newTestSession(pickLast())
	ctx := context.Background()

	require.NoError(t, session.SubmitWordList("one two"))
	firstID := session.ID()
	_, err := session.NextRound(ctx)
	require.NoError(t, err)
	_, err = session.CheckSpelling("two")
	require.NoError(t, err)

	require.NoError(t, session.SubmitWordList("three"))
	snap := session.Snapshot()
	assert.NotEqual(t, firstID, snap.ID)
	assert.Equal(t, AwaitingSelection, snap.State)
	assert.Equal(t, []string{"three"}, snap.Pool)
	assert.Empty(t, snap.ActiveWord)
	assert.Equal(t, 0, snap.Done)
	assert.Empty(t, session.History())
}

func TestSession_SubmitWords(t *testing.T) {
	session, _, _ := newTestSession()

	assert.ErrorIs(t, session.SubmitWords([]string{"", " "}), ErrEmptyWordList)
	require.NoError(t, session.SubmitWords([]string{"cat", " dog ", ""}))
	assert.Equal(t, []string{"cat", "dog"}, session.Snapshot().Pool)
}

func TestSession_ErrorsOutsideRound(t *testing.T) {
	session, _, _ := newTestSession(pickLast())
	ctx := context.Background()

	_, err := session.NextRound(ctx)
	assert.ErrorIs(t, err, ErrNoWordList)
	assert.Equal(t, NotStarted, session.State())

	_, err = session.CheckSpelling("cat")
	assert.ErrorIs(t, err, ErrNoWordList)

	require.NoError(t, session.SubmitWordList("cat"))
	_, err = session.CheckSpelling("cat")
	assert.ErrorIs(t, err, ErrNoActiveRound)

	_, err = session.NextRound(ctx)
	require.NoError(t, err)
	_, err = session.CheckSpelling("cat")
	require.NoError(t, err)
	assert.Equal(t, Completed, session.State())

	_, err = session.NextRound(ctx)
	assert.ErrorIs(t, err, ErrSessionCompleted)
	_, err = session.CheckSpelling("cat")
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestSession_CaseInsensitive(t *testing.T) {
	tests := []struct {
		answer string
		want   Outcome
	}{
		{"cat", Correct},
		{"Cat", Correct},
		{"CAT", Correct},
		{"  cat\n", Correct},
		{"Cats", Incorrect},
		{"ca", Incorrect},
		{"", Incorrect},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			session, _, _ := newTestSession()
			require.NoError(t, session.SubmitWordList("cat"))
			_, err := session.NextRound(context.Background())
			require.NoError(t, err)

			result, err := session.CheckSpelling(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Outcome)
		})
	}
}

func TestSession_CompletesExactlyOnce(t *testing.T) {
	words := (&testutil.TestDataGenerator{}).GenerateWords()
	session, _, _ := newTestSession(WithRand(rand.New(rand.NewPCG(1, 2))))
	ctx := context.Background()

	require.NoError(t, session.SubmitWords(words))

	seen := map[string]bool{}
	completions := 0
	successes := 0
	for session.State() != Completed {
		before := session.Snapshot()
		round, err := session.NextRound(ctx)
		require.NoError(t, err)
		require.False(t, seen[round.Word], "word %s selected twice", round.Word)
		seen[round.Word] = true

		after := session.Snapshot()
		assert.Equal(t, len(before.Pool)-1, len(after.Pool))
		assert.NotContains(t, after.Pool, round.Word)

		// Two failures keep the pool and the active word unchanged
		for i := 0; i < 2; i++ {
			result, err := session.CheckSpelling(round.Word + "x")
			require.NoError(t, err)
			assert.False(t, result.Completed)
			snap := session.Snapshot()
			assert.Equal(t, after.Pool, snap.Pool)
			assert.Equal(t, round.Word, snap.ActiveWord)
			assert.Equal(t, i+1, snap.FailedAttempts)
		}

		result, err := session.CheckSpelling(round.Word)
		require.NoError(t, err)
		successes++
		if result.Completed {
			completions++
		}
	}

	assert.Equal(t, len(words), successes)
	assert.Equal(t, 1, completions)
	assert.Len(t, seen, len(words))
	assert.Equal(t, len(words), session.Snapshot().Done)
	assert.Equal(t, 0, session.Snapshot().Remaining())
}

func TestSession_InputKey(t *testing.T) {
	session, _, _ := newTestSession(pickLast())
	ctx := context.Background()

	require.NoError(t, session.SubmitWordList("one two"))
	key := session.Snapshot().InputKey

	_, err := session.NextRound(ctx)
	require.NoError(t, err)

	result, err := session.CheckSpelling("wrong")
	require.NoError(t, err)
	assert.Equal(t, key, result.InputKey, "a failed attempt keeps the input")

	result, err = session.CheckSpelling("two")
	require.NoError(t, err)
	assert.Equal(t, key+1, result.InputKey)
	assert.Equal(t, 1, result.Remaining)
}

func TestSession_NextRoundDuringRound(t *testing.T) {
	session, lookup, _ := newTestSession()
	ctx := context.Background()

	require.NoError(t, session.SubmitWordList("cat dog"))
	first, err := session.NextRound(ctx)
	require.NoError(t, err)

	again, err := session.NextRound(ctx)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Same(t, first, session.Current())
	assert.Len(t, lookup.Calls, 1)
	assert.Len(t, session.Snapshot().Pool, 1)
}

func TestSession_LookupFailure(t *testing.T) {
	lookupErr := errors.New("rate limited")
	lookup := &testutil.MockLookup{Errors: map[string]error{"banana": lookupErr}}
	synth := &testutil.MockSynthesizer{}
	session := New(lookup, synth, pickLast())
	ctx := context.Background()

	require.NoError(t, session.SubmitWordList("apple banana"))

	round, err := session.NextRound(ctx)
	assert.ErrorIs(t, err, lookupErr)
	assert.Nil(t, round)
	assert.Equal(t, AwaitingSelection, session.State())
	assert.Nil(t, session.Current())
	assert.Empty(t, synth.Calls)

	// The failed word stays held and is not returned to the pool
	snap := session.Snapshot()
	assert.Equal(t, "banana", snap.ActiveWord)
	assert.Equal(t, []string{"apple"}, snap.Pool)

	delete(lookup.Errors, "banana")
	round, err = session.NextRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, "banana", round.Word)
	assert.Equal(t, []string{"apple"}, session.Snapshot().Pool)
	assert.Equal(t, []string{"banana", "banana"}, lookup.Calls)
}

func TestSession_SynthesisFailure(t *testing.T) {
	synthErr := errors.New("tts unavailable")
	lookup := &testutil.MockLookup{Contents: map[string]string{"cat": "Cat\nA small animal."}}
	synth := &testutil.MockSynthesizer{Errors: map[string]error{"Cat\nA small animal.": synthErr}}
	session := New(lookup, synth)

	require.NoError(t, session.SubmitWordList("cat"))

	_, err := session.NextRound(context.Background())
	assert.ErrorIs(t, err, synthErr)
	assert.Contains(t, err.Error(), "failed to synthesize audio for 'cat'")
	assert.Equal(t, AwaitingSelection, session.State())

	_, err = session.CheckSpelling("cat")
	assert.ErrorIs(t, err, ErrNoActiveRound)
}

func TestSession_RoundContent(t *testing.T) {
	lookup := &testutil.MockLookup{Contents: map[string]string{"cat": "Cat\nA small animal."}}
	synth := &testutil.MockSynthesizer{Format: "mp3"}
	session := New(lookup, synth)

	require.NoError(t, session.SubmitWordList("cat"))
	round, err := session.NextRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, round.Number)
	assert.Equal(t, "Cat\nA small animal.", round.Text)
	require.NotNil(t, round.Clip)
	assert.Equal(t, "mp3", round.Clip.Format)
	assert.Equal(t, []string{"Cat\nA small animal."}, synth.Calls)
}

func TestSnapshotIsCopy(t *testing.T) {
	session, _, _ := newTestSession()
	require.NoError(t, session.SubmitWordList("a b c"))

	snap := session.Snapshot()
	snap.Pool[0] = "changed"
	assert.Equal(t, []string{"a", "b", "c"}, session.Snapshot().Pool)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not started", NotStarted.String())
	assert.Equal(t, "round failed", RoundFailed.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "incorrect", Incorrect.String())
}
