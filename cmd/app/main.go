package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/database"
	"github.com/akyairhashvil/studytimer/internal/driver"
	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/akyairhashvil/studytimer/internal/tui"
	"github.com/akyairhashvil/studytimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	modeFlag := flag.String("mode", "", "start in `mode` (study or workout)")
	minutesFlag := flag.String("minutes", "", "countdown length in minutes (1-180)")
	headless := flag.Bool("headless", false, "count down on stdout without the terminal UI")
	dbFlag := flag.String("db", "", "history database `path`")
	noHistory := flag.Bool("no-history", false, "do not record completed sessions")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(tui.VersionLabel())
		return nil
	}

	settings, err := config.EnsureSettings(config.SettingsPath())
	util.LogError("load settings", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Initialize Database
	dataDir := util.DataDir(config.AppName)
	util.MustSucceed("create data dir", os.MkdirAll(dataDir, 0o755))
	var db *database.Database
	var repo database.Repository
	if settings.RecordHistory && !*noHistory {
		dbPath := *dbFlag
		if dbPath == "" {
			dbPath = filepath.Join(dataDir, config.DBFileName)
		}
		db, err = database.Open(ctx, dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = db
	}

	mode, err := resolveMode(ctx, *modeFlag, settings, repo)
	if err != nil {
		return err
	}
	minutes := 0
	if *minutesFlag != "" {
		minutes = timer.ParseMinutes(*minutesFlag)
	}
	initial := timer.Initial(mode)
	if minutes > 0 {
		initial = timer.Transition(initial, timer.SetDuration(minutes))
	}

	if *headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(ctx, os.Stdout, repo, initial, config.TickInterval)
	}

	// 2. Start Program
	logFile, err := tea.LogToFile(filepath.Join(dataDir, config.LogFileName), config.AppName)
	if err == nil {
		defer logFile.Close()
	}
	if db != nil {
		log.Printf("history database: %s", db.Path())
	}
	model := tui.NewModel(ctx, repo, tui.Options{
		Mode:       mode,
		Minutes:    minutes,
		Theme:      resolveTheme(ctx, settings, repo),
		ShowChecks: settings.ShowChecks,
		ReportsDir: util.ReportsDir(config.AppName),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// resolveMode prefers the flag, then the last mode used, then settings.yaml.
func resolveMode(ctx context.Context, flagValue string, settings config.Settings, store database.SettingsRepository) (timer.Mode, error) {
	if flagValue != "" {
		return timer.ParseMode(flagValue)
	}
	if store != nil {
		if last, err := store.GetSetting(ctx, config.SettingLastMode); err == nil {
			if mode, err := timer.ParseMode(last); err == nil {
				return mode, nil
			}
		}
	}
	if mode, err := timer.ParseMode(settings.StartMode); err == nil {
		return mode, nil
	}
	return timer.ModeStudy, nil
}

func resolveTheme(ctx context.Context, settings config.Settings, store database.SettingsRepository) string {
	if store != nil {
		if theme, err := store.GetSetting(ctx, config.SettingTheme); err == nil && theme != "" {
			return theme
		}
	}
	return settings.Theme
}

// runHeadless counts initial down on w with a real ticker, recording the
// session when it completes. An interrupt ends the run without an error.
func runHeadless(ctx context.Context, w io.Writer, store database.SessionRepository, initial timer.State, interval time.Duration) error {
	fmt.Fprintf(w, "%s %s\n", initial.Mode.Label(), timer.FormatSeconds(initial.RemainingSeconds))
	d := driver.New(initial,
		driver.WithInterval(interval),
		driver.WithStopOnComplete(),
		driver.WithOnChange(func(_, next timer.State) {
			fmt.Fprintf(w, "%s %s\n", timer.FormatSeconds(next.RemainingSeconds), tui.StatusLabel(next))
		}),
	)
	go d.Dispatch(timer.Start())

	if err := d.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(w, "Interrupted.")
			return nil
		}
		return err
	}

	final := d.State()
	if !final.Done() || store == nil {
		return nil
	}
	saved, err := store.RecordSession(ctx, models.Session{
		Mode:            string(final.Mode),
		DurationSeconds: final.DurationSeconds,
		CompletedAt:     time.Now(),
	})
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	fmt.Fprintf(w, "Session %s saved.\n", saved.ID)
	return nil
}
