package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/charmbracelet/x/ansi"
)

// Status labels shown under the clock.
const (
	LabelRunning = "Running…"
	LabelDone    = "Done ✅"
	LabelPaused  = "Paused"
)

// StatusLabel describes what the countdown is doing.
func StatusLabel(s timer.State) string {
	switch {
	case s.Running:
		return LabelRunning
	case s.Done():
		return LabelDone
	default:
		return LabelPaused
	}
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatSummary renders per-mode counts for every known mode, in mode order.
func FormatSummary(summaries []models.SessionSummary) string {
	byMode := make(map[string]models.SessionSummary, len(summaries))
	for _, s := range summaries {
		byMode[s.Mode] = s
	}
	parts := make([]string, 0, len(timer.Modes))
	for _, mode := range timer.Modes {
		s := byMode[string(mode)]
		part := fmt.Sprintf("%s %d", strings.ToLower(mode.Label()), s.Count)
		if s.TotalSeconds > 0 {
			part += " (" + FormatDuration(time.Duration(s.TotalSeconds)*time.Second) + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " • ")
}

func truncate(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
