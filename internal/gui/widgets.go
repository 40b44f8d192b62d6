package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/spellbee/internal/drill"
)

const listenHint = "Listen to the definition and type the word."

// RoundDisplay shows the progress of the session, the definition text of
// the current round and the outcome of the last attempt
type RoundDisplay struct {
	widget.BaseWidget

	container     *fyne.Container
	titleLabel    *widget.Label
	textLabel     *widget.Label
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	resultLabel   *widget.Label

	showText bool
}

// NewRoundDisplay creates the round display. When showText is set the
// definition is shown with the word masked, otherwise only a hint.
func NewRoundDisplay(showText bool) *RoundDisplay {
	d := &RoundDisplay{showText: showText}

	d.titleLabel = widget.NewLabel("No round yet")
	d.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	d.textLabel = widget.NewLabel(drill.NoWordListMessage)
	d.textLabel.Wrapping = fyne.TextWrapWord

	d.progressBar = widget.NewProgressBar()
	d.progressLabel = widget.NewLabel("")

	d.resultLabel = widget.NewLabel("")
	d.resultLabel.Alignment = fyne.TextAlignCenter
	d.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	textScroll := container.NewVScroll(d.textLabel)
	textScroll.SetMinSize(fyne.NewSize(0, 140))

	d.container = container.NewVBox(
		container.NewBorder(nil, nil, d.titleLabel, d.progressLabel),
		d.progressBar,
		textScroll,
		d.resultLabel,
	)

	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer implements fyne.Widget
func (d *RoundDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.container)
}

// SetRound displays a freshly started round
func (d *RoundDisplay) SetRound(round *drill.Round) {
	d.titleLabel.SetText(fmt.Sprintf("Round %d", round.Number))
	if d.showText {
		d.textLabel.SetText(drill.MaskWord(round.Text, round.Word))
	} else {
		d.textLabel.SetText(listenHint)
	}
	d.resultLabel.SetText("")
	d.resultLabel.Importance = widget.MediumImportance
	d.resultLabel.Refresh()
}

// SetLoading shows that content for the next round is being fetched
func (d *RoundDisplay) SetLoading() {
	d.textLabel.SetText("Fetching the next word...")
}

// SetText replaces the text area
func (d *RoundDisplay) SetText(text string) {
	d.textLabel.SetText(text)
}

// SetProgress updates the progress bar from a session snapshot
func (d *RoundDisplay) SetProgress(state drill.SessionState) {
	if state.Total == 0 {
		d.progressBar.SetValue(0)
		d.progressLabel.SetText("")
		return
	}
	d.progressBar.SetValue(float64(state.Done) / float64(state.Total))

	label := fmt.Sprintf("%d of %d spelled", state.Done, state.Total)
	if state.FailedAttempts > 0 {
		label += fmt.Sprintf(", %d failed attempt(s)", state.FailedAttempts)
	}
	d.progressLabel.SetText(label)
}

// SetResult shows the outcome message of an attempt
func (d *RoundDisplay) SetResult(message string, outcome drill.Outcome) {
	switch outcome {
	case drill.Correct:
		d.resultLabel.Importance = widget.SuccessImportance
	case drill.Incorrect:
		d.resultLabel.Importance = widget.DangerImportance
	default:
		d.resultLabel.Importance = widget.WarningImportance
	}
	d.resultLabel.SetText(message)
}
