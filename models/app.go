package models

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nexustrader/assistant"
	"nexustrader/chart"
	"nexustrader/config"
	"nexustrader/market"
)

// AppModel is the single bubbletea model driving the dashboard.
type AppModel struct {
	State  int
	Width  int
	Height int

	Registry   *market.Registry
	Sim        *market.Simulator
	Assistant  *assistant.Manager
	Transcript *assistant.Transcript
	Chart      *chart.Widget

	Keys   []string
	Cursor int    // market watch highlight
	Active string // focused instrument key

	ChatInput   string
	ChatFocused bool

	// Presentational toggles, no cross-component contract.
	ShowNotif   bool
	ShowProfile bool

	TickInterval time.Duration
	Status       string
}

// App states
const (
	StateDashboard = iota
	StateNews
	StateHelp
)

func NewAppModel(cfg *config.Config) (*AppModel, error) {
	registry, err := market.NewRegistry(market.Seed())
	if err != nil {
		return nil, err
	}

	factory := assistant.NewFactory(cfg.AIProvider, cfg.AIModel,
		cfg.GeminiAPIKey, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)

	m := &AppModel{
		State:        StateDashboard,
		Registry:     registry,
		Sim:          market.NewSimulator(registry, time.Now().UnixNano()),
		Assistant:    assistant.NewManager(factory, cfg.AssistantTimeout),
		Transcript:   &assistant.Transcript{},
		Keys:         registry.Keys(),
		TickInterval: cfg.TickInterval,
	}
	m.setFocus(m.Keys[0])
	return m, nil
}

// setFocus switches the focused instrument: the transcript is replaced with a
// fresh greeting and the chart panel is rebuilt for the new symbol, never
// mutated in place.
func (m *AppModel) setFocus(key string) {
	inst, ok := m.Registry.Get(key)
	if !ok {
		return
	}
	m.Active = key
	m.Transcript.Reset(inst)
	m.Chart = chart.New(market.ChartSymbol(key))
}

// ActiveInstrument returns a snapshot of the focused instrument.
func (m *AppModel) ActiveInstrument() market.Instrument {
	inst, _ := m.Registry.Get(m.Active)
	return inst
}

// Bubble Tea interface methods
func (m *AppModel) Init() tea.Cmd {
	return tickEvery(m.TickInterval)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		// One synchronous round of price movement, then rearm the timer. The
		// timer dies with the program, so the tick can never outlive its state.
		m.Sim.Tick()
		return m, tickEvery(m.TickInterval)

	case chatReplyMsg:
		// Dropped silently when the focus changed while the reply was in flight.
		m.Transcript.Complete(msg.epoch, msg.text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *AppModel) View() string {
	switch m.State {
	case StateNews:
		return m.newsView()
	case StateHelp:
		return m.helpView()
	default:
		return m.dashboardView()
	}
}

// Message types for Bubble Tea
type tickMsg time.Time
type chatReplyMsg struct {
	epoch int
	text  string
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// submitChat runs the draft through the transcript's acceptance guard and,
// when accepted, dispatches the assistant exchange. The draft is cleared the
// moment the submission is accepted, before the reply arrives.
func (m *AppModel) submitChat() tea.Cmd {
	epoch, ok := m.Transcript.Begin(m.ChatInput)
	if !ok {
		return nil
	}
	message := m.ChatInput
	m.ChatInput = ""

	contextData, err := json.Marshal(m.ActiveInstrument())
	if err != nil {
		contextData = []byte("{}")
	}

	mgr := m.Assistant
	return func() tea.Msg {
		text := mgr.Send(context.Background(), message, string(contextData))
		return chatReplyMsg{epoch: epoch, text: text}
	}
}
