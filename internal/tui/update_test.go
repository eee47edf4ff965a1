package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/akyairhashvil/studytimer/internal/testutil"
	"github.com/akyairhashvil/studytimer/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelDefaults(t *testing.T) {
	m := setupTestModel(t, nil)
	if m.State() != timer.Initial(timer.ModeStudy) {
		t.Fatalf("unexpected initial state %+v", m.State())
	}
	if m.minutes.Value() != "25" {
		t.Fatalf("minutes input = %q", m.minutes.Value())
	}
	if m.Init() != nil {
		t.Fatalf("expected no init command without a store")
	}
	if len(m.checks) == 0 {
		t.Fatalf("expected check results")
	}
}

func TestNewModelWithOptions(t *testing.T) {
	m := NewModel(context.Background(), nil, Options{Mode: timer.ModeWorkout, Minutes: 7, Theme: "missing"})
	s := m.State()
	if s.Mode != timer.ModeWorkout || s.DurationSeconds != 420 || s.RemainingSeconds != 420 {
		t.Fatalf("unexpected state %+v", s)
	}
	if m.theme != "default" {
		t.Fatalf("unknown theme should fall back to default, got %q", m.theme)
	}
	if m.checks != nil {
		t.Fatalf("checks should be hidden")
	}
}

func TestStartSchedulesTick(t *testing.T) {
	m := setupTestModel(t, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.state.Running {
		t.Fatalf("expected running after space")
	}
	if cmd == nil || m.tickID != 1 {
		t.Fatalf("expected tick chain to start, tickID=%d", m.tickID)
	}

	next, cmd := m.handleTick(TickMsg{ID: 1})
	if next.state.RemainingSeconds != 25*60-1 {
		t.Fatalf("RemainingSeconds = %d", next.state.RemainingSeconds)
	}
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
}

func TestStaleTicksDropped(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, keyRune('s'))
	m, _ = press(t, m, keyRune('s'))
	if m.state.Running {
		t.Fatalf("expected paused")
	}

	// Outstanding tick from the paused run.
	next, cmd := m.handleTick(TickMsg{ID: 1})
	if next.state != m.state || cmd != nil {
		t.Fatalf("tick while paused should be dropped")
	}

	m, _ = press(t, m, keyRune('s'))
	if m.tickID != 2 {
		t.Fatalf("tickID = %d, want 2", m.tickID)
	}
	next, cmd = m.handleTick(TickMsg{ID: 1})
	if next.state != m.state || cmd != nil {
		t.Fatalf("tick from previous run should be dropped")
	}
	next, _ = m.handleTick(TickMsg{ID: 2})
	if next.state.RemainingSeconds != m.state.RemainingSeconds-1 {
		t.Fatalf("current tick should apply")
	}
}

func TestTickCompletionWithoutStore(t *testing.T) {
	m := setupTestModel(t, nil)
	m.state = testutil.NewState().WithDuration(120).WithRemaining(1).Running().Build()
	m.tickID = 3

	next, cmd := m.handleTick(TickMsg{ID: 3})
	if next.state.RemainingSeconds != 0 || next.state.Running {
		t.Fatalf("expected auto-pause at zero, got %+v", next.state)
	}
	if cmd != nil {
		t.Fatalf("expected no commands without a store")
	}
	if StatusLabel(next.state) != LabelDone {
		t.Fatalf("status = %q", StatusLabel(next.state))
	}
	if !strings.Contains(next.Message, "complete") {
		t.Fatalf("Message = %q", next.Message)
	}

	restarted, cmd := press(t, next, keyRune('s'))
	if restarted.state.RemainingSeconds != 120 || !restarted.state.Running || cmd == nil {
		t.Fatalf("start at zero should refill and run, got %+v", restarted.state)
	}
}

func TestResetKey(t *testing.T) {
	m := setupTestModel(t, nil)
	m.state = testutil.NewState().WithDuration(300).WithRemaining(12).Running().Build()
	m, cmd := press(t, m, keyRune('r'))
	if m.state.Running || m.state.RemainingSeconds != 300 {
		t.Fatalf("reset state %+v", m.state)
	}
	if cmd != nil {
		t.Fatalf("reset should not schedule ticks")
	}
}

func TestSwitchModeKey(t *testing.T) {
	m := setupTestModel(t, nil)
	m.state = testutil.NewState().WithDuration(300).WithRemaining(12).Running().Build()
	m, _ = press(t, m, keyRune('m'))
	if m.state != timer.Initial(timer.ModeWorkout) {
		t.Fatalf("state after mode switch %+v", m.state)
	}
	if m.minutes.Value() != "10" {
		t.Fatalf("minutes input = %q", m.minutes.Value())
	}
	m, _ = press(t, m, keyRune('m'))
	if m.state != timer.Initial(timer.ModeStudy) {
		t.Fatalf("state after second switch %+v", m.state)
	}
}

func TestApplyMinutes(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
	}{
		{" 999 ", 180},
		{"0", 1},
		{"nope", 25},
		{"  15 ", 15},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := setupTestModel(t, nil)
			m.state = testutil.NewState().WithDuration(600).WithRemaining(5).Running().Build()
			m, _ = press(t, m, keyRune('d'))
			if m.focus != FocusMinutes {
				t.Fatalf("expected minutes focus")
			}
			m.minutes.SetValue(tt.input)
			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			want := tt.minutes * 60
			if m.state.DurationSeconds != want || m.state.RemainingSeconds != want || m.state.Running {
				t.Fatalf("state %+v, want duration %d paused", m.state, want)
			}
			if m.focus != FocusTimer {
				t.Fatalf("expected focus back on timer")
			}
			if m.minutes.Value() != strconv.Itoa(tt.minutes) {
				t.Fatalf("minutes input = %q", m.minutes.Value())
			}
		})
	}
}

func TestMinutesInputCapturesKeys(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, keyRune('d'))
	m.minutes.SetValue("")
	m, _ = press(t, m, keyRune('q'))
	m, _ = press(t, m, keyRune('s'))
	if m.state.Running {
		t.Fatalf("keys typed into the input must not control the timer")
	}
	if m.minutes.Value() != "qs" {
		t.Fatalf("minutes input = %q", m.minutes.Value())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusTimer || m.minutes.Value() != "25" {
		t.Fatalf("esc should restore the input, got %q", m.minutes.Value())
	}
}

func TestQuitKeys(t *testing.T) {
	m := setupTestModel(t, nil)
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg for %q", msg.String())
		}
	}
}

func TestCycleThemeWithoutStore(t *testing.T) {
	m := setupTestModel(t, nil)
	m, cmd := press(t, m, keyRune('t'))
	if m.theme != "dracula" || CurrentTheme.Name != "Dracula" {
		t.Fatalf("theme = %q", m.theme)
	}
	if cmd != nil {
		t.Fatalf("expected no persistence without a store")
	}
	m, _ = press(t, m, keyRune('t'))
	if m.theme != "default" {
		t.Fatalf("theme should wrap around, got %q", m.theme)
	}
}

func TestExportWithoutStore(t *testing.T) {
	m := setupTestModel(t, nil)
	m, cmd := press(t, m, keyRune('e'))
	if cmd != nil || m.Message != "History is disabled" {
		t.Fatalf("Message = %q", m.Message)
	}
}

func TestWindowSizeAdjustsProgress(t *testing.T) {
	m := setupTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = next.(Model)
	if m.progress.Width != 22 {
		t.Fatalf("progress width = %d", m.progress.Width)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 20})
	m = next.(Model)
	if m.progress.Width != 10 {
		t.Fatalf("progress width should not drop below the minimum, got %d", m.progress.Width)
	}
}

func TestReportAndSettingMessages(t *testing.T) {
	m := setupTestModel(t, nil)
	next, _ := m.Update(reportExportedMsg{path: "/tmp/r.pdf"})
	if got := next.(Model).Message; got != "Report saved: /tmp/r.pdf" {
		t.Fatalf("Message = %q", got)
	}
	next, _ = m.Update(reportExportedMsg{err: errors.New("disk full")})
	if got := next.(Model).Message; !strings.Contains(got, "disk full") {
		t.Fatalf("Message = %q", got)
	}
	if _, cmd := m.Update(settingSavedMsg{key: "theme"}); cmd != nil {
		t.Fatalf("unexpected command")
	}
}
