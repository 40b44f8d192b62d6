// Package drill implements the spelling drill session controller.
//
// A Session owns the word pool, the active word and the outcome of the last
// attempt. Front ends drive it through one call per user action:
//
//	session := drill.New(lookup, synthesizer)
//	if err := session.SubmitWordList("apple, banana"); err != nil {
//		// ErrEmptyWordList
//	}
//	round, err := session.NextRound(ctx) // fetches text and audio
//	result, err := session.CheckSpelling("apple")
//
// Words are drawn at random and removed from the pool when they are
// selected. A misspelled word stays active until it is spelled correctly,
// it is never put back into the pool.
//
// A Session is not safe for concurrent use. The GUI and TUI both serialise
// calls on their event loop.
package drill
