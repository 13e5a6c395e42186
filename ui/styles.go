package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Main styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA")).
			Background(lipgloss.Color("#000000")).
			Padding(0, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD")).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1D4ED8")).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("#3B82F6"))

	// Data display styles
	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	PositiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	NegativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	NeutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	// Live feed indicator
	LiveOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	LiveOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	// Chat styles
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1D4ED8")).
			Padding(0, 1)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#D1D5DB")).
				Background(lipgloss.Color("#1F2937")).
				Padding(0, 1)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1D4ED8")).
			Padding(0, 1)

	PriceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)
)

// FormatCurrency renders a price with two decimals and thousands separators.
func FormatCurrency(value float64) string {
	return "$" + group(fmt.Sprintf("%.2f", value))
}

// FormatPercentage renders a signed percentage, green for gains, red for losses.
func FormatPercentage(value float64) string {
	if value >= 0 {
		return PositiveStyle.Render(fmt.Sprintf("+%.2f%%", value))
	}
	return NegativeStyle.Render(fmt.Sprintf("%.2f%%", value))
}

// FormatPrice renders a price with precision scaled to its magnitude.
func FormatPrice(value float64) string {
	if value < 1.0 {
		return PriceStyle.Render("$" + fmt.Sprintf("%.6f", value))
	} else if value < 10.0 {
		return PriceStyle.Render("$" + fmt.Sprintf("%.4f", value))
	}
	return PriceStyle.Render("$" + group(fmt.Sprintf("%.2f", value)))
}

// SignalBadge colors a signal action by its direction.
func SignalBadge(action string) string {
	upper := strings.ToUpper(action)
	switch {
	case strings.Contains(upper, "BUY"):
		return PositiveStyle.Render(action)
	case strings.Contains(upper, "SELL"):
		return NegativeStyle.Render(action)
	default:
		return WarningStyle.Render(action)
	}
}

// RiskBadge colors a risk level.
func RiskBadge(level string) string {
	switch level {
	case "High":
		return NegativeStyle.Render(level)
	case "Medium":
		return WarningStyle.Render(level)
	default:
		return PositiveStyle.Render(level)
	}
}

// group inserts thousands separators into the integer part of a formatted
// decimal string.
func group(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
