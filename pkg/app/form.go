package app

import (
	"fmt"
	"strings"

	"github.com/byxorna/coursebook/pkg/form"
	"github.com/byxorna/coursebook/pkg/text"
	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"github.com/byxorna/coursebook/pkg/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldCode formField = iota
	fieldName
	fieldProgression
	fieldSyllabus
	fieldCount
)

func (f formField) label() string {
	return [...]string{"Code", "Name", "Progression", "Syllabus"}[f]
}

// formModel holds the four form inputs. It knows nothing about saving; the
// form.Controller does that.
type formModel struct {
	code, name, syllabus textinput.Model
	progression          v1.Progression

	focused formField
	active  bool
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

func newFormModel() formModel {
	return formModel{
		code:        newInput("CS101", 32),
		name:        newInput("Introduction to Programming", 256),
		syllabus:    newInput("https://example.edu/syllabus", 1024),
		progression: v1.ProgressionA,
	}
}

func (f formModel) Fields() form.Fields {
	return form.Fields{
		Code:        f.code.Value(),
		Name:        f.name.Value(),
		Progression: f.progression,
		Syllabus:    f.syllabus.Value(),
	}
}

func (f *formModel) Load(fields form.Fields) {
	f.code.SetValue(fields.Code)
	f.name.SetValue(fields.Name)
	f.syllabus.SetValue(fields.Syllabus)
	f.progression = fields.Progression
	if !f.progression.Valid() {
		f.progression = v1.ProgressionA
	}
}

func (f *formModel) input(field formField) *textinput.Model {
	switch field {
	case fieldCode:
		return &f.code
	case fieldName:
		return &f.name
	case fieldSyllabus:
		return &f.syllabus
	}
	return nil
}

// Focus activates the form and puts the cursor on field.
func (f *formModel) Focus(field formField) tea.Cmd {
	f.active = true
	f.focused = field
	for i := formField(0); i < fieldCount; i++ {
		if in := f.input(i); in != nil {
			in.Blur()
		}
	}
	if in := f.input(field); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *formModel) Blur() {
	f.active = false
	for i := formField(0); i < fieldCount; i++ {
		if in := f.input(i); in != nil {
			in.Blur()
		}
	}
}

func (f *formModel) Next() tea.Cmd {
	return f.Focus((f.focused + 1) % fieldCount)
}

func (f *formModel) Prev() tea.Cmd {
	return f.Focus((f.focused + fieldCount - 1) % fieldCount)
}

func (f *formModel) CycleProgression(forward bool) {
	if forward {
		f.progression = f.progression.Next()
	} else {
		f.progression = f.progression.Prev()
	}
}

func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	in := f.input(f.focused)
	if in == nil {
		return f, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return f, cmd
}

func (f formModel) View(state form.State, width int) string {
	var title string
	if state.Editing {
		title = ui.EditTitleStyle.Render(fmt.Sprintf("%s Editing %s", text.EmojiEditing, state.Code))
	} else {
		title = ui.FormTitleStyle.Render("New course")
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")

	for i := formField(0); i < fieldCount; i++ {
		label := fmt.Sprintf("%-12s", i.label())
		if f.active && i == f.focused {
			label = ui.FuchsiaFg(label)
		} else {
			label = ui.GrayFg(label)
		}

		var value string
		if i == fieldProgression {
			value = progressionPicker(f.progression, f.active && i == f.focused)
		} else {
			in := f.input(i)
			in.Width = width - 14
			value = in.View()
		}
		b.WriteString(label + " " + value + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func progressionPicker(selected v1.Progression, focused bool) string {
	opts := make([]string, 0, len(v1.Progressions))
	for _, p := range v1.Progressions {
		if p == selected {
			opts = append(opts, text.Badge(p.String()))
		} else {
			opts = append(opts, ui.DimNormalFg(" "+p.String()+" "))
		}
	}
	picker := lipgloss.JoinHorizontal(lipgloss.Top, opts...)
	if focused {
		return ui.DullFuchsiaFg("‹ ") + picker + ui.DullFuchsiaFg(" ›")
	}
	return "  " + picker
}
