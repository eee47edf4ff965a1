package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/database"
	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures NewModel.
type Options struct {
	Mode       timer.Mode
	Minutes    int // 0 keeps the mode default
	Theme      string
	ShowChecks bool
	ReportsDir string
	Now        func() time.Time
}

// Model is the root bubbletea model. It owns the countdown state and feeds
// every action through timer.Transition.
type Model struct {
	ctx   context.Context
	store database.Repository // nil disables history

	state  timer.State
	tickID int

	focus    int
	minutes  textinput.Model
	progress progress.Model
	keys     *HandlerRegistry

	theme      string
	checks     []timer.CheckResult
	summaries  []models.SessionSummary
	reportsDir string
	now        func() time.Time

	Message string
	width   int
	height  int
}

func NewModel(ctx context.Context, store database.Repository, opts Options) Model {
	mode := opts.Mode
	if !mode.Valid() {
		mode = timer.ModeStudy
	}
	state := timer.Initial(mode)
	if opts.Minutes > 0 {
		state = timer.Transition(state, timer.SetDuration(opts.Minutes))
	}

	ti := textinput.New()
	ti.Placeholder = "minutes"
	ti.CharLimit = config.MinutesCharLimit
	ti.Width = config.MinutesInputWidth
	ti.SetValue(strconv.Itoa(state.DurationSeconds / 60))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = config.CardWidth - 4

	theme := opts.Theme
	if !SetTheme(theme) {
		theme = "default"
		SetTheme(theme)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		ctx:        ctx,
		store:      store,
		state:      state,
		focus:      FocusTimer,
		minutes:    ti,
		progress:   prog,
		keys:       defaultRegistry(),
		theme:      theme,
		reportsDir: opts.ReportsDir,
		now:        now,
	}
	if opts.ShowChecks {
		m.checks = timer.RunChecks()
	}
	return m
}

// State returns the countdown state currently held by the model.
func (m Model) State() timer.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return loadSummaryCmd(m.ctx, m.store, startOfDay(m.now()))
}
