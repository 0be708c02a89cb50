package notify

import (
	"testing"
	"time"
)

func TestShowReplacesCurrent(t *testing.T) {
	n := New(time.Minute)

	n.Show("first", ToneInfo)
	n.Show("second", ToneError)

	msg, ok := n.Current()
	if !ok {
		t.Fatal("expected a live message")
	}
	if msg.Text != "second" || msg.Tone != ToneError {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestAutoClearAfterTTL(t *testing.T) {
	n := New(20 * time.Millisecond)

	n.Show("fleeting", ToneSuccess)
	if _, ok := n.Current(); !ok {
		t.Fatal("expected message right after Show")
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, ok := n.Current(); !ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("message was never auto-cleared")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReplacementGetsItsOwnTTL(t *testing.T) {
	n := New(40 * time.Millisecond)

	n.Show("first", ToneInfo)
	time.Sleep(25 * time.Millisecond)
	second := n.Show("second", ToneInfo)

	// the first message's clock must not clear the replacement early
	time.Sleep(25 * time.Millisecond)
	msg, ok := n.Current()
	if !ok {
		t.Fatal("replacement cleared on the first message's timer")
	}
	if msg.ID != second.ID {
		t.Errorf("unexpected live message: %+v", msg)
	}
}

func TestDismiss(t *testing.T) {
	n := New(time.Minute)

	n.Show("gone soon", ToneInfo)
	n.Dismiss()

	if _, ok := n.Current(); ok {
		t.Error("expected no message after Dismiss")
	}

	// dismissing nothing is a no-op
	n.Dismiss()
}

func TestDefaultTone(t *testing.T) {
	n := New(time.Minute)
	msg := n.Show("plain", "")
	if msg.Tone != ToneInfo {
		t.Errorf("expected info default, got %s", msg.Tone)
	}
}
