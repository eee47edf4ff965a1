package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/database"
	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one elapsed second. ID ties it to the run that scheduled it so
// ticks left over from a paused run are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

type sessionRecordedMsg struct {
	session models.Session
	err     error
}

type summaryLoadedMsg struct {
	summaries []models.SessionSummary
	err       error
}

type reportExportedMsg struct {
	path string
	err  error
}

type historyClearedMsg struct {
	removed int64
	err     error
}

type settingSavedMsg struct {
	key string
	err error
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{ID: id, Time: t} })
}

func recordSessionCmd(ctx context.Context, store database.SessionRepository, s timer.State, at time.Time) tea.Cmd {
	return func() tea.Msg {
		saved, err := store.RecordSession(ctx, models.Session{
			Mode:            string(s.Mode),
			DurationSeconds: s.DurationSeconds,
			CompletedAt:     at,
		})
		return sessionRecordedMsg{session: saved, err: err}
	}
}

func loadSummaryCmd(ctx context.Context, store database.SessionRepository, since time.Time) tea.Cmd {
	return func() tea.Msg {
		summaries, err := store.SummarizeSince(ctx, since)
		return summaryLoadedMsg{summaries: summaries, err: err}
	}
}

func exportReportCmd(ctx context.Context, store database.SessionRepository, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := ExportSessionReport(ctx, store, dir, now)
		return reportExportedMsg{path: path, err: err}
	}
}

func clearHistoryCmd(ctx context.Context, store database.SessionRepository) tea.Cmd {
	return func() tea.Msg {
		removed, err := store.ClearSessions(ctx)
		return historyClearedMsg{removed: removed, err: err}
	}
}

func saveSettingCmd(ctx context.Context, store database.SettingsRepository, key, value string) tea.Cmd {
	return func() tea.Msg {
		return settingSavedMsg{key: key, err: store.SetSetting(ctx, key, value)}
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
