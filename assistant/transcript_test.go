package assistant

import (
	"strings"
	"testing"

	"nexustrader/market"
)

func btcFixture() market.Instrument {
	return market.Instrument{
		Key:    "BTC",
		Name:   "Bitcoin",
		Symbol: "BTC/USD",
		Signal: market.Signal{Action: "STRONG BUY"},
	}
}

func ethFixture() market.Instrument {
	return market.Instrument{
		Key:    "ETH",
		Name:   "Ethereum",
		Symbol: "ETH/USD",
		Signal: market.Signal{Action: "BUY"},
	}
}

func TestResetProducesGreeting(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())

	turns := tr.Turns()
	if len(turns) != 2 {
		t.Fatalf("greeting has %d turns, want 2", len(turns))
	}
	for i, turn := range turns {
		if turn.Speaker != SpeakerAssistant {
			t.Errorf("turn %d spoken by %q, want assistant", i, turn.Speaker)
		}
	}
	if !strings.Contains(turns[0].Text, "Bitcoin") || !strings.Contains(turns[0].Text, "BTC/USD") {
		t.Errorf("greeting does not name the instrument: %q", turns[0].Text)
	}
	if !strings.Contains(turns[1].Text, "STRONG BUY") {
		t.Errorf("greeting does not state the signal action: %q", turns[1].Text)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())
	if _, ok := tr.Begin("what about resistance?"); !ok {
		t.Fatal("submission rejected unexpectedly")
	}

	// Refocusing the same instrument still yields a fresh two-turn greeting,
	// discarding everything added in between.
	tr.Reset(btcFixture())
	tr.Reset(btcFixture())

	if got := len(tr.Turns()); got != 2 {
		t.Fatalf("transcript has %d turns after double reset, want 2", got)
	}
	if tr.Pending() {
		t.Fatal("pending survived a reset")
	}
}

func TestSubmissionReentrancy(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())

	epoch, ok := tr.Begin("a")
	if !ok {
		t.Fatal("first submission rejected")
	}
	if _, ok := tr.Begin("b"); ok {
		t.Fatal("second submission accepted while first is in flight")
	}

	if !tr.Complete(epoch, "analysis of a") {
		t.Fatal("reply for the accepted submission was dropped")
	}

	turns := tr.Turns()
	var users, replies int
	for _, turn := range turns {
		switch turn.Speaker {
		case SpeakerUser:
			users++
			if turn.Text != "a" {
				t.Errorf("unexpected user turn %q", turn.Text)
			}
		case SpeakerAssistant:
			replies++
		}
	}
	if users != 1 {
		t.Errorf("%d user turns, want 1", users)
	}
	if replies != 3 { // two greeting turns plus one reply
		t.Errorf("%d assistant turns, want 3", replies)
	}
}

func TestFocusPreemptsPendingReply(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())

	epoch, ok := tr.Begin("a")
	if !ok {
		t.Fatal("submission rejected")
	}

	tr.Reset(ethFixture())

	if tr.Complete(epoch, "stale bitcoin analysis") {
		t.Fatal("stale reply was accepted after focus change")
	}

	turns := tr.Turns()
	if len(turns) != 2 {
		t.Fatalf("transcript has %d turns, want only the new greeting", len(turns))
	}
	for _, turn := range turns {
		if strings.Contains(turn.Text, "bitcoin") {
			t.Errorf("stale content leaked into new transcript: %q", turn.Text)
		}
	}
	if tr.Pending() {
		t.Fatal("transcript still pending after reset")
	}
}

func TestEmptyInputIgnored(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, ok := tr.Begin(input); ok {
			t.Errorf("blank input %q was accepted", input)
		}
	}
	if len(tr.Turns()) != 2 {
		t.Fatalf("blank input changed the transcript: %d turns", len(tr.Turns()))
	}
	if tr.Pending() {
		t.Fatal("blank input entered pending state")
	}
}

func TestCompleteWithWrongEpoch(t *testing.T) {
	var tr Transcript
	tr.Reset(btcFixture())

	epoch, _ := tr.Begin("a")
	if tr.Complete(epoch+1, "reply from the future") {
		t.Fatal("mismatched epoch accepted")
	}
	if !tr.Complete(epoch, "reply") {
		t.Fatal("matching epoch rejected")
	}
	// A second completion for the same exchange must be a no-op.
	if tr.Complete(epoch, "duplicate reply") {
		t.Fatal("duplicate completion accepted")
	}
}
