package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellbee/internal"
	"codeberg.org/snonux/spellbee/internal/anki"
	"codeberg.org/snonux/spellbee/internal/drill"
	"codeberg.org/snonux/spellbee/internal/player"
	"codeberg.org/snonux/spellbee/internal/wordlist"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window
	tabs   *container.AppTabs

	// Word list tab
	wordsEntry   *CustomMultiLineEntry
	loadButton   *ttwidget.Button
	submitButton *ttwidget.Button
	listStatus   *widget.Label

	// Exercise tab
	roundDisplay *RoundDisplay
	audioPlayer  *AudioPlayer
	answerEntry  *AnswerEntry
	checkButton  *ttwidget.Button
	nextButton   *ttwidget.Button
	exportButton *ttwidget.Button
	helpButton   *ttwidget.Button
	logViewer    *LogViewer
	statusLabel  *widget.Label

	// Drill state. Session calls are made on the UI goroutine, except for
	// NextRound which runs in the background while busy is set.
	session  *drill.Session
	busy     bool
	inputKey int

	config *Config
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds GUI application configuration
type Config struct {
	// NewSession creates the drill session. Provider progress is written
	// to log.
	NewSession func(log io.Writer) (*drill.Session, error)

	// Export writes completed words to path. Nil disables exporting.
	Export func(path string, records []drill.Record) error

	ExportPath    string // Exported automatically on completion when set
	DeckName      string
	InitialWords  string
	PlayerCommand string
	AutoPlay      bool
	ShowText      bool
}

// New creates a new GUI application
func New(config *Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.spellbee")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:    myApp,
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}

	a.setupUI()

	session, err := config.NewSession(io.MultiWriter(os.Stdout, a.logViewer))
	if err != nil {
		a.setStatus(fmt.Sprintf("Error: %v", err))
		a.submitButton.Disable()
		dialog.ShowError(err, a.window)
		return a
	}
	a.session = session

	if config.InitialWords != "" {
		a.wordsEntry.SetText(config.InitialWords)
	}

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("spellbee v%s - Spelling Bee", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(760, 640))

	a.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon("Word List", theme.DocumentIcon(), a.createWordListTab()),
		container.NewTabItemWithIcon("Exercise", theme.MediaPlayIcon(), a.createExerciseTab()),
	)

	a.statusLabel = widget.NewLabel("Ready")
	content := container.NewBorder(nil, a.statusLabel, nil, nil, a.tabs)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.audioPlayer.Stop()
		a.cancel()
	})

	a.setupKeyboardShortcuts()
}

func (a *Application) createWordListTab() fyne.CanvasObject {
	a.wordsEntry = NewCustomMultiLineEntry()
	a.wordsEntry.SetPlaceHolder("Enter words separated by commas, spaces or newlines...")
	a.wordsEntry.SetOnEscape(func() { a.window.Canvas().Unfocus() })
	a.wordsEntry.SetOnSubmit(a.onSubmitList)

	a.loadButton = ttwidget.NewButtonWithIcon("Load file", theme.FolderOpenIcon(), a.onLoadFile)
	a.submitButton = ttwidget.NewButtonWithIcon("Start drill", theme.ConfirmIcon(), a.onSubmitList)
	a.submitButton.Importance = widget.HighImportance

	a.listStatus = widget.NewLabel("")

	buttons := container.NewHBox(a.loadButton, layout.NewSpacer(), a.listStatus, a.submitButton)

	return container.NewBorder(
		widget.NewLabel("Words to practise:"),
		buttons,
		nil, nil,
		a.wordsEntry,
	)
}

func (a *Application) createExerciseTab() fyne.CanvasObject {
	a.roundDisplay = NewRoundDisplay(a.config.ShowText)
	a.audioPlayer = NewAudioPlayer(player.New(a.config.PlayerCommand))

	a.answerEntry = NewAnswerEntry()
	a.answerEntry.OnSubmitted = func(string) { a.onCheck() }
	a.answerEntry.SetOnEscape(func() { a.window.Canvas().Unfocus() })
	a.answerEntry.Disable()

	a.checkButton = ttwidget.NewButtonWithIcon("Check spelling", theme.ConfirmIcon(), a.onCheck)
	a.checkButton.Importance = widget.HighImportance
	a.checkButton.Disable()

	a.nextButton = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.startRound)
	a.nextButton.Disable()

	a.exportButton = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExport)
	a.exportButton.Disable()

	a.helpButton = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	a.logViewer = NewLogViewer()

	toolbar := container.NewHBox(
		a.audioPlayer,
		layout.NewSpacer(),
		a.nextButton,
		a.exportButton,
		a.helpButton,
	)

	answer := container.NewBorder(nil, nil, nil, a.checkButton, a.answerEntry)

	exercise := container.NewVBox(
		toolbar,
		widget.NewSeparator(),
		a.roundDisplay,
		answer,
	)

	split := container.NewVSplit(exercise, a.logViewer)
	split.SetOffset(0.7)
	return split
}

// setupTooltips sets all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.loadButton.SetToolTip("Load a .txt, .csv or .xlsx word list (l)")
	a.submitButton.SetToolTip("Start a fresh drill with this list (Ctrl+Enter)")
	a.checkButton.SetToolTip("Check spelling (Enter)")
	a.nextButton.SetToolTip("Fetch the word again after an error (n)")
	a.exportButton.SetToolTip("Export spelled words to Anki (x)")
	a.helpButton.SetToolTip("Show hotkeys (h)")
	a.audioPlayer.SetupTooltips()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onSubmitList starts a fresh session from the word list text
func (a *Application) onSubmitList() {
	if a.session == nil || a.busy {
		return
	}

	if err := a.session.SubmitWordList(a.wordsEntry.Text); err != nil {
		if errors.Is(err, drill.ErrEmptyWordList) {
			a.listStatus.SetText(drill.EmptyListMessage)
			return
		}
		a.showError(err)
		return
	}

	snap := a.session.Snapshot()
	a.listStatus.SetText(fmt.Sprintf("%d words", snap.Total))
	a.setStatus(fmt.Sprintf("Started drill with %d words", snap.Total))
	a.logViewer.Log("Session %s started with %d words", a.session.ID(), snap.Total)
	a.exportButton.Disable()
	a.roundDisplay.SetProgress(snap)
	a.answerEntry.SetText("")
	a.inputKey = snap.InputKey

	a.tabs.SelectIndex(1)
	a.startRound()
}

// startRound fetches content and audio for the next word in the background
func (a *Application) startRound() {
	if a.session == nil || a.busy {
		return
	}

	a.busy = true
	a.setRoundEnabled(false)
	a.nextButton.Disable()
	a.submitButton.Disable()
	a.audioPlayer.Clear()
	a.roundDisplay.SetLoading()
	a.setStatus("Looking up the next word...")

	session := a.session
	go func() {
		round, err := session.NextRound(a.ctx)
		fyne.Do(func() {
			a.busy = false
			a.submitButton.Enable()
			a.onRoundReady(round, err)
		})
	}()
}

func (a *Application) onRoundReady(round *drill.Round, err error) {
	switch {
	case errors.Is(err, drill.ErrSessionCompleted):
		a.onCompleted()
		return
	case errors.Is(err, drill.ErrNoWordList):
		a.roundDisplay.SetText(drill.NoWordListMessage)
		a.tabs.SelectIndex(0)
		return
	case err != nil:
		a.roundDisplay.SetText("Could not prepare this word. Press the refresh button to try again.")
		a.nextButton.Enable()
		a.showError(err)
		return
	}

	a.roundDisplay.SetRound(round)
	a.roundDisplay.SetProgress(a.session.Snapshot())
	a.audioPlayer.SetClip(round.Clip, fmt.Sprintf(" (%s, %.1f KB)", round.Clip.MIMEType(), float64(round.Clip.Len())/1024))
	a.setRoundEnabled(true)
	a.window.Canvas().Focus(a.answerEntry)
	a.setStatus(fmt.Sprintf("Round %d ready", round.Number))
	a.logViewer.Log("Round %d ready, %d words left after this one", round.Number, len(a.session.Snapshot().Pool))

	if a.config.AutoPlay {
		a.audioPlayer.Play()
	}
}

// onCheck checks the typed answer
func (a *Application) onCheck() {
	if a.session == nil || a.busy {
		return
	}

	result, err := a.session.CheckSpelling(a.answerEntry.Text)
	switch {
	case errors.Is(err, drill.ErrNoWordList):
		a.roundDisplay.SetResult(drill.NoWordListMessage, drill.Pending)
		return
	case errors.Is(err, drill.ErrSessionCompleted), errors.Is(err, drill.ErrNoActiveRound):
		return
	case err != nil:
		a.showError(err)
		return
	}

	if result.InputKey != a.inputKey {
		a.inputKey = result.InputKey
		a.answerEntry.SetText("")
	}

	a.roundDisplay.SetResult(result.Message, result.Outcome)
	a.roundDisplay.SetProgress(a.session.Snapshot())

	switch {
	case result.Completed:
		a.onCompleted()
	case result.Outcome == drill.Correct:
		a.startRound()
	default:
		a.answerEntry.TypedShortcut(&fyne.ShortcutSelectAll{})
	}
}

// onCompleted finishes the session and exports when configured
func (a *Application) onCompleted() {
	a.setRoundEnabled(false)
	a.audioPlayer.Clear()
	a.roundDisplay.SetResult(drill.CompletionMessage, drill.Correct)
	a.roundDisplay.SetText(drill.CompletionMessage)
	a.setStatus("Drill completed")

	message := drill.CompletionMessage
	if a.config.Export != nil {
		a.exportButton.Enable()
		if a.config.ExportPath != "" {
			if err := a.config.Export(a.config.ExportPath, a.session.History()); err != nil {
				a.showError(fmt.Errorf("export failed: %w", err))
			} else {
				message += fmt.Sprintf("\n\nAnki deck written to %s", a.config.ExportPath)
				a.logViewer.Log("Exported %d words to %s", len(a.session.History()), a.config.ExportPath)
			}
		}
	}

	dialog.ShowInformation("Well done!", message, a.window)
}

// onExport asks for a file name and exports the spelled words
func (a *Application) onExport() {
	if a.config.Export == nil || a.session == nil || len(a.session.History()) == 0 {
		dialog.ShowInformation("Nothing to export", "Spell some words first!", a.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := a.config.Export(path, a.session.History()); err != nil {
			a.showError(fmt.Errorf("export failed: %w", err))
			return
		}
		a.setStatus(fmt.Sprintf("Exported to %s", path))
		a.logViewer.Log("Exported %d words to %s", len(a.session.History()), path)
	}, a.window)
	save.SetFileName(anki.FileName(a.config.DeckName))
	save.SetFilter(storage.NewExtensionFileFilter([]string{".apkg", ".csv"}))
	save.Show()
}

// onLoadFile reads a word list file into the word list editor
func (a *Application) onLoadFile() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		words, err := wordlist.ReadFile(path)
		if err != nil {
			a.showError(err)
			return
		}
		a.wordsEntry.SetText(strings.Join(words, "\n"))
		a.listStatus.SetText(fmt.Sprintf("Loaded %d words", len(words)))
	}, a.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".csv", ".xlsx", ".xlsm"}))
	open.Show()
}

func (a *Application) onShowHotkeys() {
	hotkeys := `## Word list
**Ctrl+Enter** Start drill  
**l** Load word list file  

## Exercise
**Enter** Check spelling  
**p** Play definition again  
**s** Stop playback  
**a** Focus answer  
**n** Retry after an error  
**Esc** Unfocus field  

## General
**1/2** Switch tabs  
**x** Export to Anki  
**h** Show hotkeys  
**q** Quit application`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom("Hotkeys", "Close", container.NewPadded(content), a.window)
	d.Resize(fyne.NewSize(360, 460))
	d.Show()
}

func (a *Application) setRoundEnabled(enabled bool) {
	if enabled {
		a.answerEntry.Enable()
		a.checkButton.Enable()
	} else {
		a.answerEntry.Disable()
		a.checkButton.Disable()
	}
}

func (a *Application) setStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.setStatus("Error: " + err.Error())
}

// setupKeyboardShortcuts handles hotkeys while no input field is focused
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if a.inputFocused() {
			return
		}

		switch r {
		case '1':
			a.tabs.SelectIndex(0)
		case '2':
			a.tabs.SelectIndex(1)
		case 'l', 'L':
			a.onLoadFile()
		case 'p', 'P':
			a.audioPlayer.Play()
		case 's', 'S':
			a.audioPlayer.Stop()
		case 'a', 'A':
			if !a.answerEntry.Disabled() {
				a.tabs.SelectIndex(1)
				a.window.Canvas().Focus(a.answerEntry)
			}
		case 'n', 'N':
			if !a.nextButton.Disabled() {
				a.startRound()
			}
		case 'x', 'X':
			a.onExport()
		case 'h', 'H':
			a.onShowHotkeys()
		case 'q', 'Q':
			a.window.Close()
		}
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
		}
	})
}

func (a *Application) inputFocused() bool {
	focused := a.window.Canvas().Focused()
	return focused == a.wordsEntry || focused == a.answerEntry
}
