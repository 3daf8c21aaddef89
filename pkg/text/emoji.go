package text

import (
	"hash/fnv"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Ellipsis = "…"
)

var (
	EmojiSaved   = emoji.CheckMarkButton.String()
	EmojiFailed  = emoji.CrossMark.String()
	EmojiNotice  = emoji.Eyes.String()
	EmojiCourse  = emoji.Books.String()
	EmojiEditing = emoji.Pencil.String()
)

var (
	badgeColorHashSalt uint32 = 6969420
	// NOTE: changing these dimensions uncovers some awkward indexing issues in the color
	// selection algo for badges. avoid if you can help it
	badgeColors = colorGrid(4, 4)
)

// Return the time in a human-readable format relative to the current time.
func RelativeTime(then time.Time) string {
	now := time.Now()
	ago := now.Sub(then)
	if ago < time.Minute {
		return "just now"
	} else if ago < humanize.Week {
		return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
	}
	return then.Format("02 Jan 2006 15:04 MST")
}

// Magnitudes for relative time.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// BadgeColor picks a stable color for label, so the same label is always drawn
// the same way.
func BadgeColor(label string) lipgloss.Color {
	colorRangeX := len(badgeColors)
	colorRangeY := len(badgeColors[0])

	hasher := fnv.New32a()
	hasher.Write([]byte(label))
	hash := hasher.Sum32() + badgeColorHashSalt
	n := colorRangeX * colorRangeY
	idx := hash % uint32(n)
	x := int(idx) / colorRangeX
	y := int(idx) - (x * colorRangeY)

	return lipgloss.Color(badgeColors[x][y])
}

func Badge(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(BadgeColor(label)).
		Padding(0, 1).
		Render(label)
}

func colorGrid(xSteps, ySteps int) [][]string {
	x0y0, _ := colorful.Hex("#F25D94")
	x1y0, _ := colorful.Hex("#EDFF82")
	x0y1, _ := colorful.Hex("#643AFF")
	x1y1, _ := colorful.Hex("#14F9D5")

	x0 := make([]colorful.Color, ySteps)
	for i := range x0 {
		x0[i] = x0y0.BlendLuv(x0y1, float64(i)/float64(ySteps))
	}

	x1 := make([]colorful.Color, ySteps)
	for i := range x1 {
		x1[i] = x1y0.BlendLuv(x1y1, float64(i)/float64(ySteps))
	}

	grid := make([][]string, ySteps)
	for x := 0; x < ySteps; x++ {
		y0 := x0[x]
		grid[x] = make([]string, xSteps)
		for y := 0; y < xSteps; y++ {
			grid[x][y] = y0.BlendLuv(x1[x], float64(y)/float64(xSteps)).Hex()
		}
	}

	return grid
}
