package tui

import (
	"strings"

	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	th := CurrentTheme
	var b strings.Builder

	b.WriteString(th.Header.Render("Workout / Study Timer"))
	b.WriteString("\n")
	b.WriteString(th.Subtitle.Render("terminal edition • " + VersionLabel()))
	b.WriteString("\n\n")
	b.WriteString(m.renderModeChips())
	b.WriteString("\n")
	b.WriteString(th.Clock.Render(timer.FormatSeconds(m.state.RemainingSeconds)))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.state.Progress()))
	b.WriteString("\n\n")
	b.WriteString(m.renderDuration())
	b.WriteString("\n")

	if m.store != nil {
		b.WriteString("\n")
		b.WriteString(th.Dim.Render("Today: " + FormatSummary(m.summaries)))
		b.WriteString("\n")
	}
	if len(m.checks) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderChecks())
	}
	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(th.Highlight.Render(truncate(m.Message, m.contentWidth())))
		b.WriteString("\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 2).
		Render(b.String())

	footer := th.Dim.Render(truncate(m.keys.HelpFor(m.focus), m.contentWidth()))
	return th.Base.Render(lipgloss.JoinVertical(lipgloss.Left, card, footer))
}

func (m Model) renderModeChips() string {
	th := CurrentTheme
	chips := make([]string, 0, len(timer.Modes))
	for _, mode := range timer.Modes {
		style := th.Chip
		if mode == m.state.Mode {
			style = th.ChipActive
		}
		chips = append(chips, style.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderStatus() string {
	th := CurrentTheme
	label := StatusLabel(m.state)
	switch label {
	case LabelRunning:
		return th.Running.Render(label)
	case LabelDone:
		return th.Done.Render(label)
	}
	return th.Paused.Render(label)
}

func (m Model) renderDuration() string {
	th := CurrentTheme
	hint := "[d] edit"
	if m.focus == FocusMinutes {
		hint = "[enter] apply [esc] cancel"
	}
	input := th.Input.Render(m.minutes.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, "Duration ", input, " ", th.Dim.Render(hint))
}

func (m Model) renderChecks() string {
	th := CurrentTheme
	var b strings.Builder
	b.WriteString(th.Subtitle.Render("Checks"))
	b.WriteString("\n")
	for _, c := range m.checks {
		line := "✅ " + c.Name
		style := th.Pass
		if !c.Passed {
			line = "❌ " + c.Name
			style = th.Fail
		}
		b.WriteString(style.Render(truncate(line, m.contentWidth())))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width - 8
}
