package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const ReadyText = "Ready"

// StatusBar shows a resting status and transient messages that expire.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label

	mu         sync.Mutex
	generation int
	timer      *time.Timer
	stopped    bool
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel(ReadyText)
	statusLabel.Truncation = fyne.TextTruncateEllipsis

	return &StatusBar{
		container:   container.NewBorder(widget.NewSeparator(), nil, nil, nil, statusLabel),
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) Text() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetStatus(status string) {
	sb.mu.Lock()
	sb.generation++
	sb.stopTimer()
	sb.mu.Unlock()
	sb.statusLabel.SetText(status)
}

// ShowMessage displays message for d, then returns to the ready text unless a
// newer message replaced it meanwhile.
func (sb *StatusBar) ShowMessage(message string, d time.Duration) {
	sb.mu.Lock()
	sb.generation++
	gen := sb.generation
	sb.stopTimer()
	if !sb.stopped {
		sb.timer = time.AfterFunc(d, func() { sb.expire(gen) })
	}
	sb.mu.Unlock()

	sb.statusLabel.SetText(message)
}

func (sb *StatusBar) expire(gen int) {
	sb.mu.Lock()
	current := sb.generation == gen && !sb.stopped
	sb.mu.Unlock()
	if current {
		fyne.Do(func() {
			sb.statusLabel.SetText(ReadyText)
		})
	}
}

// Stop cancels a pending message expiry. Later messages stay until replaced.
func (sb *StatusBar) Stop() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.stopped = true
	sb.stopTimer()
}

// stopTimer requires sb.mu.
func (sb *StatusBar) stopTimer() {
	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
}
