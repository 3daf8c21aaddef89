package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-rod/rod/lib/launcher"
)

type storageChangedMsg string

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// OpenBrowser opens url in a new browser window. launcher.Open does not report
// failures, so neither does this.
func OpenBrowser(url string) error {
	launcher.Open(url)
	return nil
}

func openSyllabusCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return errMsg{fmt.Errorf("unable to open %s: %w", url, err)}
		}
		return nil
	}
}

// waitForChangeCmd blocks until the storage watcher reports a key changed by
// another process.
func waitForChangeCmd(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		key, ok := <-changes
		if !ok {
			return nil
		}
		return storageChangedMsg(key)
	}
}
