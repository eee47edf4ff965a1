package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndFocus(t *testing.T) {
	r := NewHandlerRegistry()
	var called []string
	mk := func(name string, handled bool) KeyHandler {
		return func(m Model, key string) (Model, tea.Cmd, bool) {
			called = append(called, name)
			return m, nil, handled
		}
	}
	r.Register(KeyBinding{Key: "x", Handler: mk("low", true), Priority: 1})
	r.Register(KeyBinding{Key: "x", Handler: mk("high", false), Priority: 5})
	r.Register(KeyBinding{Key: "x", Handler: mk("input", true), Focus: []int{FocusMinutes}, Priority: 10})

	m := Model{focus: FocusTimer}
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if len(called) != 2 || called[0] != "high" || called[1] != "low" {
		t.Fatalf("call order = %v", called)
	}
	if _, _, handled := r.Handle(m, "y"); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestHelpForDeduplicates(t *testing.T) {
	r := defaultRegistry()
	help := r.HelpFor(FocusTimer)
	if help == "" {
		t.Fatalf("expected help text")
	}
	if got := r.HelpFor(FocusMinutes); got != "[enter]apply [esc]cancel" {
		t.Fatalf("HelpFor(FocusMinutes) = %q", got)
	}
}

func TestKeyBindingAppliesTo(t *testing.T) {
	b := KeyBinding{Key: "a"}
	if !b.AppliesTo(FocusTimer) || !b.AppliesTo(FocusMinutes) {
		t.Fatalf("binding without focus should apply everywhere")
	}
	b.Focus = []int{FocusMinutes}
	if b.AppliesTo(FocusTimer) {
		t.Fatalf("binding should be restricted")
	}
}
