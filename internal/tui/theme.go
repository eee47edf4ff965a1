package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Subtitle   lipgloss.Style
	Clock      lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	Running    lipgloss.Style
	Done       lipgloss.Style
	Paused     lipgloss.Style
	Pass       lipgloss.Style
	Fail       lipgloss.Style
	Input      lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(1, 0),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ChipActive: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Running:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Done:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Paused:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Pass:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("62"),                                             // Purple
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ChipActive: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("141")).Bold(true).Padding(0, 1),
		Running:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Done:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Paused:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Pass:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Fail:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")), // Pink
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme activates name and reports whether it exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// ThemeNames lists theme keys alphabetically.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
