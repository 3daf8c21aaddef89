package app

import (
	"fmt"
	"time"

	"github.com/byxorna/coursebook/pkg/form"
	"github.com/byxorna/coursebook/pkg/text"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/byxorna/coursebook/pkg/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// pane is the half of the screen receiving key presses.
type pane int

const (
	formPane pane = iota
	listPane
)

// StorageInfo is what the status bar shows about the store.
type StorageInfo interface {
	Status() v1.SyncStatus
	LastSaved() time.Time
	Location() string
}

type Application struct {
	ctrl    *form.Controller
	storage StorageInfo
	log     *zap.Logger

	keys applicationKeyMap
	help help.Model
	form formModel
	list list.Model
	pane pane

	showStatusMessage    bool
	statusMessage        statusMessage
	statusMessageTimeout time.Duration

	changes <-chan string
	openURL func(string) error

	width, height int
	quitting      bool
}

func (m Application) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChangeCmd(m.changes))
}

func (m Application) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case statusMessageTimeoutMsg:
		m.hideStatusMessage()
		return m, nil

	case storageChangedMsg:
		cmds = append(cmds,
			m.newStatusMessage(form.Notification{
				Kind:    form.Subtle,
				Message: fmt.Sprintf("%s was changed outside coursebook; restart to reload", string(msg)),
			}),
			waitForChangeCmd(m.changes))
		return m, tea.Batch(cmds...)

	case errMsg:
		m.log.Warn("command failed", zap.Error(msg.err))
		return m, m.newStatusMessage(form.Notification{Kind: form.Error, Message: msg.Error()})

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		// key presses only go to the focused pane
		var cmd tea.Cmd
		var handled bool
		if m.pane == listPane {
			// Don't match any of the keys below if we're actively filtering.
			if m.list.FilterState() != list.Filtering {
				cmd, handled = m.handleListKey(msg)
			}
			if !handled {
				m.list, cmd = m.list.Update(msg)
			}
		} else {
			cmd, handled = m.handleFormKey(msg)
			if !handled {
				m.form, cmd = m.form.Update(msg)
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Application) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(), true

	case key.Matches(msg, m.keys.NextField):
		return m.form.Next(), true

	case key.Matches(msg, m.keys.PrevField):
		return m.form.Prev(), true

	case key.Matches(msg, m.keys.Cycle) && m.form.focused == fieldProgression:
		m.form.CycleProgression(msg.String() == "right")
		return nil, true

	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
		m.form.Load(m.ctrl.Fields())
		return m.form.Focus(fieldCode), true

	case key.Matches(msg, m.keys.ToList):
		m.focusList()
		return nil, true
	}
	return nil, false
}

func (m *Application) handleListKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, cardKeys.edit):
		if item, ok := m.list.SelectedItem().(courseItem); ok {
			return m.startEdit(item.Code), true
		}
		return nil, true

	case key.Matches(msg, cardKeys.remove):
		if item, ok := m.list.SelectedItem().(courseItem); ok {
			return m.remove(item.Code), true
		}
		return nil, true

	case key.Matches(msg, cardKeys.open):
		if item, ok := m.list.SelectedItem().(courseItem); ok {
			return openSyllabusCmd(m.openURL, item.Syllabus), true
		}
		return nil, true

	case key.Matches(msg, m.keys.NewCourse):
		m.ctrl.Reset()
		m.form.Load(m.ctrl.Fields())
		return m.focusForm(fieldCode), true

	case key.Matches(msg, m.keys.ToForm):
		return m.focusForm(m.form.focused), true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return nil, true

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	}
	return nil, false
}

// startEdit is the per-card edit trigger. A course that vanished in the
// meantime is ignored.
func (m *Application) startEdit(code string) tea.Cmd {
	if !m.ctrl.StartEdit(code) {
		return m.refreshList()
	}
	m.form.Load(m.ctrl.Fields())
	return m.focusForm(fieldCode)
}

func (m *Application) submit() tea.Cmd {
	m.ctrl.SetFields(m.form.Fields())

	n, err := m.ctrl.Submit()
	if err != nil {
		return m.newStatusMessage(n)
	}

	m.form.Load(m.ctrl.Fields())
	return tea.Batch(
		m.newStatusMessage(n),
		m.refreshList(),
		m.form.Focus(fieldCode),
	)
}

func (m *Application) remove(code string) tea.Cmd {
	n, _ := m.ctrl.Delete(code)
	return tea.Batch(m.newStatusMessage(n), m.refreshList())
}

// refreshList rebuilds every card from the store. This is linear in the number
// of courses, which stays small.
func (m *Application) refreshList() tea.Cmd {
	return m.list.SetItems(itemsFromCourses(m.ctrl.Courses()))
}

func (m *Application) focusForm(field formField) tea.Cmd {
	m.pane = formPane
	m.keys.listFocused = false
	return m.form.Focus(field)
}

func (m *Application) focusList() {
	m.pane = listPane
	m.keys.listFocused = true
	m.form.Blur()
}

func (m *Application) resize() {
	topGap, rightGap, bottomGap, leftGap := ui.AppStyle.GetPadding()
	width := m.width - leftGap - rightGap
	height := m.height - topGap - bottomGap - lipgloss.Height(m.footerView())

	m.help.Width = width
	// list and form panes each carry a border of 2 cells plus 2 cells of padding
	m.list.SetSize(width/2-4, height-2)
}

func (m Application) formWidth() int {
	_, rightGap, _, leftGap := ui.AppStyle.GetPadding()
	w := (m.width-leftGap-rightGap)/2 - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m Application) footerView() string {
	var status string
	if m.showStatusMessage {
		status = m.statusMessage.String()
	}

	storage := fmt.Sprintf("%s %s", text.EmojiCourse, m.storage.Location())
	switch s := m.storage.Status(); s {
	case v1.StatusOK:
		if saved := m.storage.LastSaved(); !saved.IsZero() {
			storage += ui.DimNormalFg(" · saved " + text.RelativeTime(saved))
		}
	case v1.StatusError:
		storage += ui.RedFg(" · " + string(s))
	default:
		storage += ui.DimNormalFg(" · " + string(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		ui.GrayFg(storage),
		m.help.View(m.keys),
	)
}

func (m Application) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	formStyle, listStyle := ui.FocusedPaneStyle, ui.PaneStyle
	if m.pane == listPane {
		formStyle, listStyle = ui.PaneStyle, ui.FocusedPaneStyle
	}

	w := m.formWidth()
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		formStyle.Width(w).Render(m.form.View(m.ctrl.State(), w)),
		listStyle.Render(m.list.View()),
	)

	return ui.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, panes, m.footerView()))
}
