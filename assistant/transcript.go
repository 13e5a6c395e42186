package assistant

import (
	"fmt"
	"strings"

	"nexustrader/market"
)

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one entry in the conversation log.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Transcript holds the turn log for the currently focused instrument. Focus
// changes replace the whole log; submissions are single-flight. Each reset
// bumps an epoch so a reply that resolves after a focus change is dropped
// instead of landing in the new transcript.
type Transcript struct {
	turns   []Turn
	pending bool
	epoch   int
}

// Reset replaces the log with the two-turn greeting for inst. Valid in any
// state; a pending exchange is abandoned and its eventual reply discarded.
func (t *Transcript) Reset(inst market.Instrument) {
	t.epoch++
	t.pending = false
	t.turns = []Turn{
		{Speaker: SpeakerAssistant, Text: fmt.Sprintf("Hello! I'm monitoring %s (%s).", inst.Name, inst.Symbol)},
		{Speaker: SpeakerAssistant, Text: fmt.Sprintf("Current Signal: %s. How can I assist with your analysis?", inst.Signal.Action)},
	}
}

// Begin accepts a user submission. Blank input and submissions made while a
// reply is outstanding are ignored. On acceptance the user turn is appended
// immediately and the returned epoch must be handed back to Complete.
func (t *Transcript) Begin(text string) (int, bool) {
	if t.pending || strings.TrimSpace(text) == "" {
		return 0, false
	}
	t.pending = true
	t.turns = append(t.turns, Turn{Speaker: SpeakerUser, Text: text})
	return t.epoch, true
}

// Complete appends the assistant reply for the exchange started at epoch.
// A stale epoch means the focus changed while the reply was in flight; the
// reply is dropped and Complete reports false.
func (t *Transcript) Complete(epoch int, reply string) bool {
	if epoch != t.epoch || !t.pending {
		return false
	}
	t.pending = false
	t.turns = append(t.turns, Turn{Speaker: SpeakerAssistant, Text: reply})
	return true
}

// Pending reports whether an exchange is awaiting its reply.
func (t *Transcript) Pending() bool {
	return t.pending
}

// Turns returns a copy of the current log.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}
