package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// systemInstruction is the fixed persona every session is created with.
const systemInstruction = `You are NexusTrader AI, an elite financial analyst and trading assistant.
You speak concisely, professionally, and with authority.
You analyze market data provided in the context.
If asked about specific assets, refer to technical patterns (RSI, MACD, Support/Resistance) and fundamental catalysts.
Do not give financial advice as absolute fact; always use probabilistic language (e.g., "likely", "potential upside").
Keep responses under 100 words unless asked for a deep dive.`

// Fixed degraded-mode responses. Send resolves every failure to one of these
// instead of surfacing an error.
const (
	fallbackNoCredential = "I cannot connect to the market servers (API key missing). Please check your configuration."
	fallbackInterrupted  = "Connection interrupted. Retrying analysis..."
	fallbackNoContent    = "I'm analyzing the data but couldn't generate a text response."
)

// Transport is one live conversational session with a model provider. The
// session keeps its own turn history; callers only supply the next prompt.
type Transport interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Factory creates a Transport. It fails when the provider credential is
// missing or session creation is rejected; the manager swallows that failure.
type Factory func(ctx context.Context) (Transport, error)

// Manager lazily establishes and reuses a single assistant session. The
// dashboard must stay usable with no working assistant, so every failure path
// degrades to a fixed in-transcript response.
type Manager struct {
	factory Factory
	timeout time.Duration
	id      string
	session Transport
}

// NewManager builds a manager around a transport factory. timeout bounds each
// remote call; expiry is treated as a transport failure.
func NewManager(factory Factory, timeout time.Duration) *Manager {
	return &Manager{
		factory: factory,
		timeout: timeout,
		id:      uuid.NewString(),
	}
}

// EnsureSession creates the session if none exists yet. Creation failure is
// logged and swallowed; the handle simply stays unset. Calling this twice is
// safe, just wasteful.
func (m *Manager) EnsureSession(ctx context.Context) {
	if m.session != nil {
		return
	}
	session, err := m.factory(ctx)
	if err != nil {
		log.Printf("assistant: session %s unavailable: %v", m.id, err)
		return
	}
	m.session = session
}

// Send forwards the user's message plus the serialized instrument snapshot to
// the assistant and returns the reply text. It never returns an error and
// never returns an empty string: missing credentials, transport failures and
// empty responses all resolve to a fixed fallback message.
func (m *Manager) Send(ctx context.Context, message, contextData string) string {
	if m.session == nil {
		m.EnsureSession(ctx)
	}
	if m.session == nil {
		return fallbackNoCredential
	}

	prompt := fmt.Sprintf("Context Data: %s\n\nUser Question: %s", contextData, message)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	text, err := m.session.Generate(ctx, prompt)
	if err != nil {
		log.Printf("assistant: session %s send failed: %v", m.id, err)
		return fallbackInterrupted
	}
	if strings.TrimSpace(text) == "" {
		return fallbackNoContent
	}
	return text
}

// Dispose drops the session handle. The next Send recreates it lazily.
func (m *Manager) Dispose() {
	m.session = nil
}
