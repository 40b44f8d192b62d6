package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CustomMultiLineEntry is the word list editor. Escape leaves the field and
// Ctrl+Enter submits the list, plain Enter inserts a newline.
type CustomMultiLineEntry struct {
	widget.Entry
	onEscape func()
	onSubmit func()
}

// NewCustomMultiLineEntry creates a new custom multi-line entry
func NewCustomMultiLineEntry() *CustomMultiLineEntry {
	entry := &CustomMultiLineEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapWord
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *CustomMultiLineEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut submits on Ctrl+Enter
func (e *CustomMultiLineEntry) TypedShortcut(s fyne.Shortcut) {
	if cs, ok := s.(*desktop.CustomShortcut); ok && e.onSubmit != nil {
		if cs.Modifier == fyne.KeyModifierShortcutDefault &&
			(cs.KeyName == fyne.KeyReturn || cs.KeyName == fyne.KeyEnter) {
			e.onSubmit()
			return
		}
	}
	e.Entry.TypedShortcut(s)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *CustomMultiLineEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// SetOnSubmit sets the callback for Ctrl+Enter
func (e *CustomMultiLineEntry) SetOnSubmit(f func()) {
	e.onSubmit = f
}

// AnswerEntry is the single-line spelling input. Escape leaves the field.
type AnswerEntry struct {
	widget.Entry
	onEscape func()
}

// NewAnswerEntry creates the answer input
func NewAnswerEntry() *AnswerEntry {
	entry := &AnswerEntry{}
	entry.SetPlaceHolder("Type the word you heard...")
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *AnswerEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *AnswerEntry) SetOnEscape(f func()) {
	e.onEscape = f
}
