package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/akyairhashvil/studytimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case sessionRecordedMsg:
		if msg.err != nil {
			util.LogError("record session", msg.err)
			m.Message = fmt.Sprintf("History not saved: %v", msg.err)
			return m, nil
		}
		m.Message = fmt.Sprintf("%s session saved (%s)", msg.session.Mode, timer.FormatSeconds(msg.session.DurationSeconds))
		return m, loadSummaryCmd(m.ctx, m.store, startOfDay(m.now()))
	case summaryLoadedMsg:
		if msg.err != nil {
			util.LogError("load summary", msg.err)
			return m, nil
		}
		m.summaries = msg.summaries
		return m, nil
	case reportExportedMsg:
		if msg.err != nil {
			util.LogError("export report", msg.err)
			m.Message = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.Message = fmt.Sprintf("Report saved: %s", msg.path)
		}
		return m, nil
	case historyClearedMsg:
		if msg.err != nil {
			util.LogError("clear history", msg.err)
			m.Message = fmt.Sprintf("Clear failed: %v", msg.err)
			return m, nil
		}
		m.Message = fmt.Sprintf("Cleared %d sessions", msg.removed)
		return m, loadSummaryCmd(m.ctx, m.store, startOfDay(m.now()))
	case settingSavedMsg:
		util.LogError("save setting "+msg.key, msg.err)
		return m, nil
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	target := config.CardWidth - 4
	if m.width > 0 && m.width < config.CompactModeThreshold {
		target = m.width - 8
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	m.progress.Width = target
	return m
}

// handleTick applies one Tick. Ticks from an earlier run or arriving while
// paused are dropped, and the next tick is only scheduled while running.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.ID != m.tickID || !m.state.Running {
		return m, nil
	}
	next, cmd := m.dispatch(timer.Tick())
	if next.state.Running {
		return next, tea.Batch(cmd, tickCmd(next.tickID))
	}
	return next, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.focus == FocusMinutes {
		var cmd tea.Cmd
		m.minutes, cmd = m.minutes.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch runs a through the state machine and derives the side effects:
// a fresh tick chain when the countdown starts and a history record when it
// completes.
func (m Model) dispatch(a timer.Action) (Model, tea.Cmd) {
	prev := m.state
	m.state = timer.Transition(prev, a)

	var cmds []tea.Cmd
	if m.state.Running && !prev.Running {
		m.tickID++
		cmds = append(cmds, tickCmd(m.tickID))
	}
	if timer.Completed(prev, m.state) {
		m.Message = fmt.Sprintf("%s session complete", m.state.Mode.Label())
		if m.store != nil {
			cmds = append(cmds, recordSessionCmd(m.ctx, m.store, m.state, m.now()))
		}
	}
	return m, tea.Batch(cmds...)
}

// --- Key handlers ---

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleStartPause(m Model, _ string) (Model, tea.Cmd, bool) {
	action := timer.Start()
	if m.state.Running {
		action = timer.Pause()
	}
	m.Message = ""
	next, cmd := m.dispatch(action)
	return next, cmd, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.Message = ""
	next, cmd := m.dispatch(timer.Reset())
	return next, cmd, true
}

func handleSwitchMode(m Model, _ string) (Model, tea.Cmd, bool) {
	mode := m.state.Mode.Next()
	next, cmd := m.dispatch(timer.SwitchMode(mode))
	next.minutes.SetValue(strconv.Itoa(mode.DefaultMinutes()))
	next.Message = ""
	if next.store != nil {
		cmd = tea.Batch(cmd, saveSettingCmd(next.ctx, next.store, config.SettingLastMode, string(mode)))
	}
	return next, cmd, true
}

func handleEditMinutes(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = FocusMinutes
	m.minutes.CursorEnd()
	return m, m.minutes.Focus(), true
}

func handleApplyMinutes(m Model, _ string) (Model, tea.Cmd, bool) {
	minutes := timer.ParseMinutes(m.minutes.Value())
	m.minutes.SetValue(strconv.Itoa(minutes))
	m.minutes.Blur()
	m.focus = FocusTimer
	next, cmd := m.dispatch(timer.SetDuration(minutes))
	next.Message = fmt.Sprintf("Duration set to %d min", minutes)
	return next, cmd, true
}

func handleCancelMinutes(m Model, _ string) (Model, tea.Cmd, bool) {
	m.minutes.SetValue(strconv.Itoa(m.state.DurationSeconds / 60))
	m.minutes.Blur()
	m.focus = FocusTimer
	return m, nil, true
}

func handleCycleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	m.theme = nextTheme(m.theme)
	SetTheme(m.theme)
	if m.store == nil {
		return m, nil, true
	}
	return m, saveSettingCmd(m.ctx, m.store, config.SettingTheme, m.theme), true
}

func handleExportReport(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.store == nil {
		m.Message = "History is disabled"
		return m, nil, true
	}
	m.Message = "Exporting report…"
	return m, exportReportCmd(m.ctx, m.store, m.reportsDir, m.now()), true
}

func handleAskClearHistory(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.store == nil {
		m.Message = "History is disabled"
		return m, nil, true
	}
	m.focus = FocusConfirmClear
	m.Message = "Clear all session history? [y] yes [n] no"
	return m, nil, true
}

func handleConfirmClearHistory(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = FocusTimer
	m.Message = "Clearing history…"
	return m, clearHistoryCmd(m.ctx, m.store), true
}

func handleCancelClearHistory(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = FocusTimer
	m.Message = ""
	return m, nil, true
}
