package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Focus areas a binding can apply to.
const (
	FocusTimer = iota
	FocusMinutes
	FocusConfirmClear
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Focus       []int
	Priority    int
}

func (b KeyBinding) AppliesTo(focus int) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, f := range b.Focus {
		if f == focus {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(focus int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(focus) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(focus int) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(focus) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

// defaultRegistry wires the timer key map.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	timerOnly := []int{FocusTimer}
	inputOnly := []int{FocusMinutes}
	confirmOnly := []int{FocusConfirmClear}

	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Focus: timerOnly})
	r.Register(KeyBinding{Key: "space", Handler: handleStartPause, Description: "start/pause", Focus: timerOnly, Priority: 10})
	r.Register(KeyBinding{Key: " ", Handler: handleStartPause, Focus: timerOnly, Priority: 10})
	r.Register(KeyBinding{Key: "s", Handler: handleStartPause, Focus: timerOnly, Priority: 10})
	r.Register(KeyBinding{Key: "r", Handler: handleReset, Description: "reset", Focus: timerOnly, Priority: 9})
	r.Register(KeyBinding{Key: "m", Handler: handleSwitchMode, Description: "mode", Focus: timerOnly, Priority: 8})
	r.Register(KeyBinding{Key: "d", Handler: handleEditMinutes, Description: "duration", Focus: timerOnly, Priority: 7})
	r.Register(KeyBinding{Key: "t", Handler: handleCycleTheme, Description: "theme", Focus: timerOnly, Priority: 2})
	r.Register(KeyBinding{Key: "e", Handler: handleExportReport, Description: "report", Focus: timerOnly, Priority: 1})
	r.Register(KeyBinding{Key: "X", Handler: handleAskClearHistory, Description: "clear history", Focus: timerOnly})
	r.Register(KeyBinding{Key: "y", Handler: handleConfirmClearHistory, Description: "yes", Focus: confirmOnly, Priority: 10})
	r.Register(KeyBinding{Key: "n", Handler: handleCancelClearHistory, Description: "no", Focus: confirmOnly, Priority: 9})
	r.Register(KeyBinding{Key: "esc", Handler: handleCancelClearHistory, Focus: confirmOnly, Priority: 9})
	r.Register(KeyBinding{Key: "enter", Handler: handleApplyMinutes, Description: "apply", Focus: inputOnly, Priority: 10})
	r.Register(KeyBinding{Key: "esc", Handler: handleCancelMinutes, Description: "cancel", Focus: inputOnly, Priority: 9})
	return r
}
