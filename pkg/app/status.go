package app

import (
	"time"

	"github.com/byxorna/coursebook/pkg/form"
	"github.com/byxorna/coursebook/pkg/text"
	"github.com/byxorna/coursebook/pkg/ui"
	tea "github.com/charmbracelet/bubbletea"
)

type statusMessageTimeoutMsg struct{}

// statusMessage is an ephemeral note displayed in the UI.
type statusMessage form.Notification

// String returns a styled version of the status message appropriate for the
// given context.
func (s statusMessage) String() string {
	switch s.Kind {
	case form.Subtle:
		return ui.DimGreenFg(text.EmojiNotice + " " + s.Message)
	case form.Error:
		return ui.RedFg(text.EmojiFailed + " " + s.Message)
	default:
		return ui.GreenFg(text.EmojiSaved + " " + s.Message)
	}
}

// newStatusMessage shows n and schedules it to be cleared. Timers are never
// cancelled, so an older timer may clear a newer message early.
func (m *Application) newStatusMessage(n form.Notification) tea.Cmd {
	m.showStatusMessage = true
	m.statusMessage = statusMessage(n)
	return tea.Tick(m.statusMessageTimeout, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg{}
	})
}

func (m *Application) hideStatusMessage() {
	m.showStatusMessage = false
	m.statusMessage = statusMessage{}
}
