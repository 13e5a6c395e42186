package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nexustrader/assistant"
	"nexustrader/ui"
)

const (
	watchWidth = 30
	mainWidth  = 64
	chatWidth  = 42
)

// dashboardView renders the main screen: market watch, focused instrument
// detail with signal card and chart, and the assistant chat panel.
func (m *AppModel) dashboardView() string {
	header := m.headerView()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.watchView(),
		m.mainView(),
		m.chatView(),
	)

	var overlay string
	if m.ShowNotif {
		overlay = m.notifView()
	} else if m.ShowProfile {
		overlay = m.profileView()
	}

	footer := ui.InfoStyle.Render("↑/↓ select • Tab chat • n alerts • p profile • N news • y copy signal • ? help • q quit")

	sections := []string{header}
	if overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, body, footer)
	if m.Status != "" {
		sections = append(sections, ui.DisabledStyle.Render(m.Status))
	}
	return strings.Join(sections, "\n")
}

func (m *AppModel) headerView() string {
	title := ui.TitleStyle.Render("⚡ NEXUSTRADER AI")

	var live string
	if m.Registry.Live() {
		live = ui.LiveOnStyle.Render("● LIVE FEED")
	} else {
		live = ui.LiveOffStyle.Render("● CONNECTING")
	}

	return fmt.Sprintf("%s  %s", title, live)
}

func (m *AppModel) watchView() string {
	var content strings.Builder
	content.WriteString(ui.HeaderStyle.Render("MARKET WATCH") + "\n\n")

	for i, inst := range m.Registry.Snapshot() {
		cursor := "  "
		nameStyle := ui.UnselectedStyle
		if i == m.Cursor {
			cursor = "▸ "
			nameStyle = ui.SelectedStyle
		}

		content.WriteString(fmt.Sprintf("%s%s\n", cursor, nameStyle.Render(inst.Symbol)))
		content.WriteString(fmt.Sprintf("  %s %s\n",
			ui.FormatPrice(inst.Price),
			ui.FormatPercentage(inst.ChangePct)))
		content.WriteString(ui.DisabledStyle.Render("  "+inst.Name) + "\n\n")
	}

	return ui.PanelStyle.Copy().Width(watchWidth).Render(content.String())
}

func (m *AppModel) mainView() string {
	inst := m.ActiveInstrument()

	var content strings.Builder

	// Price header
	content.WriteString(ui.ValueStyle.Render(ui.FormatCurrency(inst.Price)) + "\n")
	content.WriteString(fmt.Sprintf("%s Today • %s • %s\n\n",
		ui.FormatPercentage(inst.ChangePct),
		inst.Symbol,
		ui.DisabledStyle.Render(string(inst.Type))))

	// Signal card
	content.WriteString(ui.HeaderStyle.Render("AI SIGNAL") + "\n")
	content.WriteString(fmt.Sprintf("%s  Confidence: %d%%\n",
		ui.SignalBadge(inst.Signal.Action), inst.Signal.Confidence))
	content.WriteString(fmt.Sprintf("Entry: %s   SL: %s   TP: %s\n",
		inst.Signal.EntryZone, inst.Signal.StopLoss, inst.Signal.TakeProfit))
	content.WriteString(ui.DisabledStyle.Render(inst.Signal.Reason) + "\n\n")

	// Chart panel, rebuilt on every focus change
	content.WriteString(m.Chart.Render(m.Sim.History(m.Active)) + "\n\n")

	// Technical analysis
	content.WriteString(ui.HeaderStyle.Render("TECHNICAL AI ANALYSIS") + "\n")
	content.WriteString(fmt.Sprintf("Pattern Detected:  %s\n", inst.TechnicalPattern))
	content.WriteString(fmt.Sprintf("Key Levels:        S: %s | R: %s\n",
		ui.FormatCurrency(inst.Price*0.95), ui.FormatCurrency(inst.Price*1.05)))
	content.WriteString(fmt.Sprintf("AI Prediction:     %s\n\n", inst.AIPrediction))

	// Fundamentals and sentiment
	content.WriteString(ui.HeaderStyle.Render("FUNDAMENTAL DRIVERS") + "\n")
	content.WriteString(fmt.Sprintf("Main Catalyst:     %s\n", inst.KeyCatalyst))
	content.WriteString(fmt.Sprintf("Macro Risk:        %s\n", ui.RiskBadge(string(inst.RiskLevel))))
	content.WriteString(fmt.Sprintf("Sentiment:         %s %d/100 (%s)\n",
		sentimentGauge(inst.Sentiment), inst.Sentiment, inst.SentimentLabel))

	return ui.PanelStyle.Copy().Width(mainWidth).Render(content.String())
}

func (m *AppModel) chatView() string {
	var content strings.Builder

	title := "AI ASSISTANT"
	if m.ChatFocused {
		title = "AI ASSISTANT (typing)"
	}
	content.WriteString(ui.HeaderStyle.Render(title) + "\n\n")

	bubbleWidth := chatWidth - 8
	for _, turn := range m.Transcript.Turns() {
		if turn.Speaker == assistant.SpeakerUser {
			content.WriteString(ui.ChatUserStyle.Copy().Width(bubbleWidth).Render("You: "+turn.Text) + "\n")
		} else {
			content.WriteString(ui.ChatAssistantStyle.Copy().Width(bubbleWidth).Render("AI: "+turn.Text) + "\n")
		}
		content.WriteString("\n")
	}

	if m.Transcript.Pending() {
		content.WriteString(ui.LoadingStyle.Render("Analyzing market data...") + "\n\n")
	}

	input := m.ChatInput
	if m.ChatFocused {
		input += "│"
	} else if input == "" {
		input = "Press Tab to ask the assistant"
	}
	content.WriteString(ui.InputStyle.Copy().Width(bubbleWidth).Render(input))

	return ui.PanelStyle.Copy().Width(chatWidth).Render(content.String())
}

func (m *AppModel) notifView() string {
	var content strings.Builder
	content.WriteString(ui.HeaderStyle.Render("RECENT ALERTS") + "\n\n")

	for _, notif := range notifications {
		var titleStyle lipgloss.Style
		switch notif.Type {
		case "success":
			titleStyle = ui.PositiveStyle
		case "danger":
			titleStyle = ui.NegativeStyle
		default:
			titleStyle = ui.SelectedStyle
		}
		content.WriteString(fmt.Sprintf("%s %s\n", titleStyle.Render(notif.Title), ui.DisabledStyle.Render(notif.Time)))
		content.WriteString("  " + notif.Msg + "\n\n")
	}

	return ui.PanelStyle.Render(content.String())
}

func (m *AppModel) profileView() string {
	var content strings.Builder
	content.WriteString(ui.HeaderStyle.Render("PROFILE") + "\n\n")
	content.WriteString(ui.ValueStyle.Render("Nexus Pro") + "\n")
	content.WriteString(ui.DisabledStyle.Render("trader@nexus.ai") + "\n")
	return ui.PanelStyle.Render(content.String())
}

// newsView renders the fixture headline feed.
func (m *AppModel) newsView() string {
	title := ui.HeaderStyle.Render("📰 MARKET NEWS")

	var content strings.Builder
	for _, item := range newsFeed {
		var icon string
		switch item.Sentiment {
		case "positive":
			icon = ui.PositiveStyle.Render("▲")
		case "negative":
			icon = ui.NegativeStyle.Render("▼")
		default:
			icon = ui.NeutralStyle.Render("◆")
		}
		content.WriteString(fmt.Sprintf("%s %s\n", icon, item.Title))
		content.WriteString(fmt.Sprintf("   %s • %s • Impact: %s\n\n",
			ui.DisabledStyle.Render(item.Source),
			ui.DisabledStyle.Render(item.Time),
			item.Impact))
	}

	footer := ui.InfoStyle.Render("Press 'q' or 'Esc' to return")
	return fmt.Sprintf("%s\n%s\n%s", title, ui.PanelStyle.Render(content.String()), footer)
}

func (m *AppModel) helpView() string {
	title := ui.HeaderStyle.Render("❓ HELP")

	var content strings.Builder
	content.WriteString("↑/↓, j/k, 1-6   Select instrument\n")
	content.WriteString("Tab / i / Enter Focus the assistant input\n")
	content.WriteString("Enter           Send message (while typing)\n")
	content.WriteString("Ctrl+V          Paste into the assistant input\n")
	content.WriteString("n / p           Toggle alerts / profile\n")
	content.WriteString("N               News feed\n")
	content.WriteString("y / Ctrl+Y      Copy signal / last AI reply\n")
	content.WriteString("Esc             Close panel or go back\n")
	content.WriteString("q, Ctrl+C       Quit\n")

	footer := ui.InfoStyle.Render("Press 'q' or 'Enter' to return")
	return fmt.Sprintf("%s\n%s\n%s", title, ui.PanelStyle.Render(content.String()), footer)
}

// sentimentGauge renders a 10-slot crowd-mood bar.
func sentimentGauge(score int) string {
	filled := score / 10
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	if score >= 60 {
		return ui.PositiveStyle.Render(bar)
	}
	if score <= 40 {
		return ui.NegativeStyle.Render(bar)
	}
	return ui.WarningStyle.Render(bar)
}
