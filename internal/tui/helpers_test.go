package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/studytimer/internal/database"
	tea "github.com/charmbracelet/bubbletea"
)

var fixedNow = time.Date(2026, 5, 4, 14, 30, 0, 0, time.UTC)

func setupTestModel(t *testing.T, store database.Repository) Model {
	t.Helper()
	return NewModel(context.Background(), store, Options{
		Theme:      "default",
		ShowChecks: true,
		ReportsDir: t.TempDir(),
		Now:        func() time.Time { return fixedNow },
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd and flattens batches. Callers must not pass tick
// commands, which block for a full interval.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
