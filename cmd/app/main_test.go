package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/database"
	"github.com/akyairhashvil/studytimer/internal/testutil"
	"github.com/akyairhashvil/studytimer/internal/timer"
)

func openTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestRunHeadlessRecordsSession(t *testing.T) {
	db := openTestDB(t)
	initial := testutil.NewState().WithDuration(60).WithRemaining(3).Build()

	var out bytes.Buffer
	if err := runHeadless(context.Background(), &out, db, initial, time.Millisecond); err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	output := out.String()
	for _, want := range []string{"Study 00:03", "00:02 Running…", "00:00 Done ✅", "saved."} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
	sessions, err := db.ListSessions(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].DurationSeconds != 60 {
		t.Fatalf("sessions = %+v", sessions)
	}
}

func TestRunHeadlessInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := runHeadless(ctx, &out, nil, timer.Initial(timer.ModeWorkout), time.Hour); err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	if !strings.Contains(out.String(), "Interrupted.") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestResolveMode(t *testing.T) {
	ctx := context.Background()
	settings := config.DefaultSettings()

	mode, err := resolveMode(ctx, "Workout", settings, nil)
	if err != nil || mode != timer.ModeWorkout {
		t.Fatalf("flag mode = %q, %v", mode, err)
	}
	if _, err := resolveMode(ctx, "nap", settings, nil); !errors.Is(err, timer.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}

	settings.StartMode = "workout"
	if mode, _ := resolveMode(ctx, "", settings, nil); mode != timer.ModeWorkout {
		t.Fatalf("settings mode = %q", mode)
	}

	db := openTestDB(t)
	if err := db.SetSetting(ctx, config.SettingLastMode, "study"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if mode, _ := resolveMode(ctx, "", settings, db); mode != timer.ModeStudy {
		t.Fatalf("last mode = %q", mode)
	}
}

func TestResolveTheme(t *testing.T) {
	ctx := context.Background()
	settings := config.DefaultSettings()
	if got := resolveTheme(ctx, settings, nil); got != "default" {
		t.Fatalf("resolveTheme = %q", got)
	}
	db := openTestDB(t)
	if err := db.SetSetting(ctx, config.SettingTheme, "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := resolveTheme(ctx, settings, db); got != "dracula" {
		t.Fatalf("resolveTheme = %q", got)
	}
}
