package models

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"nexustrader/assistant"
)

func (m *AppModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Close the topmost layer first: popovers, then chat focus, then views.
		if m.ShowNotif || m.ShowProfile {
			m.ShowNotif = false
			m.ShowProfile = false
			return m, nil
		}
		if m.ChatFocused {
			m.ChatFocused = false
			return m, nil
		}
		m.State = StateDashboard
		m.Status = ""
		return m, nil
	}

	switch m.State {
	case StateNews:
		return m.handleNewsKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleDashboardKeys(msg)
	}
}

func (m *AppModel) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ChatFocused {
		return m.handleChatKeys(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			m.setFocus(m.Keys[m.Cursor])
		}
	case "down", "j":
		if m.Cursor < len(m.Keys)-1 {
			m.Cursor++
			m.setFocus(m.Keys[m.Cursor])
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.Keys) {
			m.Cursor = idx
			m.setFocus(m.Keys[idx])
		}

	case "tab", "i", "enter":
		m.ChatFocused = true
		m.ShowNotif = false
		m.ShowProfile = false

	case "n":
		m.ShowNotif = !m.ShowNotif
		m.ShowProfile = false
	case "p":
		m.ShowProfile = !m.ShowProfile
		m.ShowNotif = false

	case "N":
		m.State = StateNews
	case "?":
		m.State = StateHelp

	case "y":
		m.copySignal()
	case "ctrl+y":
		m.copyLastReply()
	}

	return m, nil
}

func (m *AppModel) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.submitChat()

	case "tab":
		m.ChatFocused = false

	case "backspace":
		if len(m.ChatInput) > 0 {
			runes := []rune(m.ChatInput)
			m.ChatInput = string(runes[:len(runes)-1])
		}

	case "ctrl+u":
		m.ChatInput = ""

	case "ctrl+v":
		// Paste from clipboard, flattened to a single line
		clipboardText, err := clipboard.ReadAll()
		if err == nil && clipboardText != "" {
			clipboardText = strings.ReplaceAll(clipboardText, "\n", " ")
			clipboardText = strings.ReplaceAll(clipboardText, "\r", "")
			m.ChatInput += strings.TrimSpace(clipboardText)
		}

	case " ":
		m.ChatInput += " "

	default:
		if msg.Type == tea.KeyRunes {
			m.ChatInput += string(msg.Runes)
		}
	}

	return m, nil
}

func (m *AppModel) handleNewsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.State = StateDashboard
	case "?":
		m.State = StateHelp
	}
	return m, nil
}

func (m *AppModel) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "enter":
		m.State = StateDashboard
	}
	return m, nil
}

// copySignal puts the focused instrument's signal summary on the clipboard.
func (m *AppModel) copySignal() {
	inst := m.ActiveInstrument()
	summary := fmt.Sprintf("%s %s (%d%%) | Entry %s | SL %s | TP %s | %s",
		inst.Symbol, inst.Signal.Action, inst.Signal.Confidence,
		inst.Signal.EntryZone, inst.Signal.StopLoss, inst.Signal.TakeProfit,
		inst.Signal.Reason)
	if err := clipboard.WriteAll(summary); err == nil {
		m.Status = "Signal copied to clipboard"
	}
}

// copyLastReply puts the most recent assistant turn on the clipboard.
func (m *AppModel) copyLastReply() {
	turns := m.Transcript.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Speaker == assistant.SpeakerAssistant {
			if err := clipboard.WriteAll(turns[i].Text); err == nil {
				m.Status = "Reply copied to clipboard"
			}
			return
		}
	}
}
