package gui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogViewer displays provider progress messages. It is an io.Writer so the
// content lookup and speech providers can log into it directly.
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu          sync.Mutex
	messages    []string
	maxMessages int
	partial     string
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{
		maxMessages: 500,
	}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 120))

	v.container = container.NewBorder(
		widget.NewLabel("Log messages (newest first):"),
		nil,
		nil,
		nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// Write implements io.Writer. Every complete line becomes one message.
func (v *LogViewer) Write(p []byte) (int, error) {
	v.mu.Lock()
	text := v.partial + string(p)
	lines := strings.Split(text, "\n")
	v.partial = lines[len(lines)-1]
	v.mu.Unlock()

	for _, line := range lines[:len(lines)-1] {
		if line = strings.TrimSpace(line); line != "" {
			v.AddMessage(line)
		}
	}
	return len(p), nil
}

// AddMessage adds a timestamped message to the top of the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	fullMessage := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	v.messages = append([]string{fullMessage}, v.messages...)
	if len(v.messages) > v.maxMessages {
		v.messages = v.messages[:v.maxMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Log adds a formatted message
func (v *LogViewer) Log(format string, args ...interface{}) {
	v.AddMessage(fmt.Sprintf(format, args...))
}
