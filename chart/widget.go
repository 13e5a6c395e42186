package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultInterval is the day-interval default the panel is created with.
const DefaultInterval = "D"

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Widget is the embedded price chart panel. It is parameterized by one
// exchange-qualified symbol and is rebuilt, never mutated, when the focused
// instrument changes.
type Widget struct {
	Symbol   string
	Interval string
	width    int
}

// New builds a fresh panel for an exchange-qualified symbol.
func New(symbol string) *Widget {
	return &Widget{
		Symbol:   symbol,
		Interval: DefaultInterval,
		width:    58,
	}
}

// Render draws the panel around the recorded price history, oldest first.
func (w *Widget) Render(history []float64) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s • %s", w.Symbol, w.Interval)))
	b.WriteString("\n")

	if len(history) < 2 {
		b.WriteString(waitingStyle.Render("Collecting live data..."))
		return frameStyle.Render(b.String())
	}

	if len(history) > w.width {
		history = history[len(history)-w.width:]
	}

	lo, hi := history[0], history[0]
	for _, p := range history {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}

	b.WriteString(sparkline(history, lo, hi))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(fmt.Sprintf("low %.2f", lo)))
	b.WriteString(strings.Repeat(" ", max(1, w.width-24)))
	b.WriteString(axisStyle.Render(fmt.Sprintf("high %.2f", hi)))

	return frameStyle.Render(b.String())
}

func sparkline(history []float64, lo, hi float64) string {
	span := hi - lo
	var b strings.Builder
	for _, p := range history {
		idx := 0
		if span > 0 {
			idx = int((p - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
