package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type StyleFunc func(...string) string

var (
	NormalFg    = NewFgStyle(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
	DimNormalFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

	BrightGrayFg    = NewFgStyle(lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"})
	DimBrightGrayFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#C2B8C2", Dark: "#4D4D4D"})

	GrayFg     = NewFgStyle(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	DarkGrayFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})

	GreenFg    = NewFgStyle(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	DimGreenFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#72D2B0", Dark: "#0B5137"})

	FuchsiaFg     = NewFgStyle(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})
	DullFuchsiaFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#F793FF", Dark: "#AD58B4"})

	IndigoFg = NewFgStyle(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	RedFg    = NewFgStyle(lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"})

	// Course card colors
	CardLinePrimaryFocused     = FuchsiaFg
	CardLineSecondaryFocused   = DullFuchsiaFg
	CardLinePrimaryUnfocused   = BrightGrayFg
	CardLineSecondaryUnfocused = DimBrightGrayFg

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	FormTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)

	EditTitleStyle = FormTitleStyle.
			Background(lipgloss.Color("#d62976"))

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#C2B8C2", Dark: "#4D4D4D"}).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#AD58B4"})
)

// Returns a style function with foreground options only.
func NewFgStyle(c lipgloss.TerminalColor) StyleFunc {
	return lipgloss.NewStyle().Foreground(c).Render
}
