package ui

import (
	"strings"
	"testing"

	"strn/internal/batch"
)

func TestApplyEventTracksProgress(t *testing.T) {
	events := make(chan batch.Event)
	m := NewProgressModel("tokenize", []string{"a.txt", "b.txt"}, events).(*progressModel)

	m.applyEvent(batch.Event{File: "a.txt", Status: batch.StatusWorking})
	if got := m.fraction(); got != 0.25 {
		t.Errorf("fraction = %v, want 0.25", got)
	}
	m.applyEvent(batch.Event{File: "a.txt", Status: batch.StatusDone, Tokens: 3})
	m.applyEvent(batch.Event{File: "b.txt", Status: batch.StatusError})
	m.applyEvent(batch.Event{File: "unknown", Status: batch.StatusDone, Tokens: 100})
	if got := m.fraction(); got != 1 {
		t.Errorf("fraction = %v, want 1", got)
	}
	if m.tokens != 3 {
		t.Errorf("tokens = %d, want 3", m.tokens)
	}

	m.done = true
	view := m.View()
	for _, want := range []string{"done: tokenize (3 tokens)", "a.txt", "b.txt", "error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestListenForEventSignalsDone(t *testing.T) {
	events := make(chan batch.Event, 1)
	m := NewProgressModel("t", []string{"f"}, events).(*progressModel)
	events <- batch.Event{File: "f", Status: batch.StatusDone}
	close(events)

	if _, ok := m.listenForEvent()().(eventMsg); !ok {
		t.Fatal("expected an event message first")
	}
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("expected doneMsg after close")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a/very/long/path.txt", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
