package app

import (
	"fmt"
	"io"

	"github.com/byxorna/coursebook/pkg/text"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/byxorna/coursebook/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const (
	cardHeight  = 3
	cardSpacing = 1
	codeWidth   = 8
)

var (
	cardKeys = delegateKeyMap{
		edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open syllabus"),
		),
	}
)

type delegateKeyMap struct {
	edit   key.Binding
	remove key.Binding
	open   key.Binding
}

// courseItem is a course as shown in the list.
type courseItem struct {
	v1.Course
}

func (i courseItem) FilterValue() string { return i.Code + " " + i.Name }

func itemsFromCourses(courses []v1.Course) []list.Item {
	lx := make([]list.Item, len(courses))
	for i := range courses {
		lx[i] = courseItem{courses[i]}
	}
	return lx
}

// cardDelegate draws each course as a small card: title, progression badge and
// a hyperlink to the syllabus.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return cardHeight }
func (d cardDelegate) Spacing() int                              { return cardSpacing }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	item, ok := li.(courseItem)
	if !ok {
		return
	}

	width := m.Width() - 4
	if width < 10 {
		width = 10
	}

	title := fmt.Sprintf("%s - %s", runewidth.FillRight(item.Code, codeWidth), item.Name)
	title = text.TruncateWithTail(title, uint(width), text.Ellipsis)
	progression := "Progression: " + text.Badge(item.Progression.String())
	syllabus := "Syllabus: " + termenv.Hyperlink(item.Syllabus,
		text.TruncateWithTail(item.Syllabus, uint(width-len("Syllabus: ")), text.Ellipsis))

	gutter := " "
	primary, secondary := ui.CardLinePrimaryUnfocused, ui.CardLineSecondaryUnfocused
	if index == m.Index() && m.FilterState() != list.Filtering {
		gutter = ui.DullFuchsiaFg("│")
		primary, secondary = ui.CardLinePrimaryFocused, ui.CardLineSecondaryFocused
	}

	fmt.Fprintf(w, "%s %s\n%s %s\n%s %s",
		gutter, primary(title),
		gutter, progression,
		gutter, secondary(syllabus))
}
