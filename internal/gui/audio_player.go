package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/player"
)

// AudioPlayer is a widget playing the clip of the current round. Replaying
// uses the clip in memory, nothing is fetched again.
type AudioPlayer struct {
	widget.BaseWidget

	container   *fyne.Container
	playButton  *ttwidget.Button
	stopButton  *ttwidget.Button
	statusLabel *widget.Label

	player    *player.Player
	clip      *audio.Clip
	isPlaying bool
	playID    int
	info      string
}

// NewAudioPlayer creates a new audio player widget
func NewAudioPlayer(p *player.Player) *AudioPlayer {
	a := &AudioPlayer{player: p}

	a.playButton = ttwidget.NewButton("", a.onPlay)
	a.playButton.Icon = theme.MediaReplayIcon()

	a.stopButton = ttwidget.NewButton("", a.onStop)
	a.stopButton.Icon = theme.MediaStopIcon()

	a.statusLabel = widget.NewLabel("No audio loaded")

	a.playButton.Disable()
	a.stopButton.Disable()

	a.container = container.NewHBox(
		a.playButton,
		a.stopButton,
		layout.NewSpacer(),
		a.statusLabel,
	)

	a.ExtendBaseWidget(a)
	return a
}

// CreateRenderer implements fyne.Widget
func (a *AudioPlayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.container)
}

// SetupTooltips sets the button tooltips once the tooltip layer exists
func (a *AudioPlayer) SetupTooltips() {
	a.playButton.SetToolTip("Play the definition again (p)")
	a.stopButton.SetToolTip("Stop playback (s)")
}

// SetClip loads the clip of a new round. info is shown next to the status.
func (a *AudioPlayer) SetClip(clip *audio.Clip, info string) {
	a.Stop()
	a.clip = clip
	a.info = info

	if clip.Len() == 0 {
		a.Clear()
		return
	}
	a.playButton.Enable()
	a.statusLabel.SetText(fmt.Sprintf("Audio ready%s", a.info))
}

// Clear stops playback and unloads the clip
func (a *AudioPlayer) Clear() {
	a.Stop()
	a.clip = nil
	a.info = ""
	a.playButton.Disable()
	a.stopButton.Disable()
	a.statusLabel.SetText("No audio loaded")
}

// Play starts playback if a clip is loaded
func (a *AudioPlayer) Play() {
	if !a.playButton.Disabled() && !a.isPlaying {
		a.onPlay()
	}
}

// Stop stops playback, including a player process still running after the
// widget went idle
func (a *AudioPlayer) Stop() {
	if a.isPlaying || a.player.Playing() {
		a.onStop()
	}
}

func (a *AudioPlayer) onPlay() {
	if a.clip == nil {
		return
	}
	if a.isPlaying {
		a.onStop()
		return
	}

	clip := a.clip
	a.playID++
	id := a.playID
	a.isPlaying = true
	a.playButton.SetIcon(theme.MediaPauseIcon())
	a.stopButton.Enable()
	a.statusLabel.SetText(fmt.Sprintf("Playing%s", a.info))

	go func() {
		err := a.player.Play(context.Background(), clip)
		fyne.Do(func() {
			if a.playID != id || !a.isPlaying {
				return
			}
			a.isPlaying = false
			a.playButton.SetIcon(theme.MediaReplayIcon())
			a.stopButton.Disable()
			if err != nil {
				a.statusLabel.SetText(fmt.Sprintf("Error: %v", err))
				return
			}
			a.statusLabel.SetText(fmt.Sprintf("Finished%s", a.info))
		})
	}()
}

func (a *AudioPlayer) onStop() {
	a.player.Stop()
	a.isPlaying = false
	a.playButton.SetIcon(theme.MediaReplayIcon())
	a.stopButton.Disable()
	a.statusLabel.SetText(fmt.Sprintf("Stopped%s", a.info))
}
