package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeTransport struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeTransport) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func fixedFactory(transport Transport, err error, created *int) Factory {
	return func(ctx context.Context) (Transport, error) {
		*created++
		if err != nil {
			return nil, err
		}
		return transport, nil
	}
}

func TestSendWithoutCredentialIsDeterministic(t *testing.T) {
	var created int
	m := NewManager(fixedFactory(nil, errors.New("GEMINI_API_KEY is not set"), &created), time.Second)

	first := m.Send(context.Background(), "hello", "{}")
	if first != fallbackNoCredential {
		t.Fatalf("got %q, want the fixed unavailability message", first)
	}
	for i := 0; i < 5; i++ {
		if got := m.Send(context.Background(), "anything", "any context"); got != first {
			t.Fatalf("fallback not deterministic: %q vs %q", got, first)
		}
	}
}

func TestSendComposesPrompt(t *testing.T) {
	transport := &fakeTransport{reply: "BTC likely tests resistance."}
	var created int
	m := NewManager(fixedFactory(transport, nil, &created), time.Second)

	got := m.Send(context.Background(), "where next?", `{"symbol":"BTC/USD"}`)
	if got != "BTC likely tests resistance." {
		t.Fatalf("reply = %q", got)
	}
	if !strings.Contains(transport.lastPrompt, `Context Data: {"symbol":"BTC/USD"}`) {
		t.Errorf("prompt missing verbatim context: %q", transport.lastPrompt)
	}
	if !strings.Contains(transport.lastPrompt, "User Question: where next?") {
		t.Errorf("prompt missing user question: %q", transport.lastPrompt)
	}
}

func TestSessionCreatedOnceAndReused(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	var created int
	m := NewManager(fixedFactory(transport, nil, &created), time.Second)

	for i := 0; i < 3; i++ {
		m.Send(context.Background(), "q", "{}")
	}
	if created != 1 {
		t.Fatalf("factory invoked %d times, want 1", created)
	}
	if transport.calls != 3 {
		t.Fatalf("transport called %d times, want 3", transport.calls)
	}
}

func TestTransportFailureReturnsInterruptedFallback(t *testing.T) {
	transport := &fakeTransport{err: errors.New("rate limited")}
	var created int
	m := NewManager(fixedFactory(transport, nil, &created), time.Second)

	if got := m.Send(context.Background(), "q", "{}"); got != fallbackInterrupted {
		t.Fatalf("got %q, want the interruption fallback", got)
	}
}

func TestEmptyResponseGetsPlaceholder(t *testing.T) {
	for _, reply := range []string{"", "   ", "\n"} {
		transport := &fakeTransport{reply: reply}
		var created int
		m := NewManager(fixedFactory(transport, nil, &created), time.Second)

		got := m.Send(context.Background(), "q", "{}")
		if got != fallbackNoContent {
			t.Fatalf("reply %q: got %q, want placeholder", reply, got)
		}
		if got == "" {
			t.Fatal("Send returned an empty string")
		}
	}
}

func TestDisposeForcesRecreation(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	var created int
	m := NewManager(fixedFactory(transport, nil, &created), time.Second)

	m.Send(context.Background(), "q", "{}")
	m.Dispose()
	m.Send(context.Background(), "q", "{}")

	if created != 2 {
		t.Fatalf("factory invoked %d times after dispose, want 2", created)
	}
}
