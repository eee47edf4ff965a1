package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/studytimer/internal/testutil"
	"github.com/akyairhashvil/studytimer/internal/timer"
)

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	base       time.Time
	sessionIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &TestDataBuilder{t: t, ctx: ctx, db: db, base: base}
}

// WithSessions records count sessions of mode, one minute apart after the
// previously seeded ones.
func (b *TestDataBuilder) WithSessions(mode timer.Mode, count, durationSeconds int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		at := b.base.Add(time.Duration(len(b.sessionIDs)) * time.Minute)
		s, err := b.db.RecordSession(b.ctx, testutil.NewSession().
			WithMode(mode).WithDuration(durationSeconds).CompletedAt(at).Build())
		if err != nil {
			b.t.Fatalf("RecordSession failed: %v", err)
		}
		b.sessionIDs = append(b.sessionIDs, s.ID)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) SessionIDs() []string {
	return b.sessionIDs
}

func TestDataBuilderSeedsSummary(t *testing.T) {
	b := NewTestDataBuilder(t).
		WithSessions(timer.ModeStudy, 2, 1500).
		WithSessions(timer.ModeWorkout, 1, 600)
	db := b.Build()
	if got := len(b.SessionIDs()); got != 3 {
		t.Fatalf("seeded %d sessions, want 3", got)
	}

	summary, err := db.SummarizeSince(context.Background(), b.base)
	if err != nil {
		t.Fatalf("SummarizeSince failed: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary[0].Mode != "study" || summary[0].Count != 2 || summary[0].TotalSeconds != 3000 {
		t.Fatalf("study summary = %+v", summary[0])
	}
	if summary[1].Mode != "workout" || summary[1].Count != 1 || summary[1].TotalSeconds != 600 {
		t.Fatalf("workout summary = %+v", summary[1])
	}

	latest, err := db.ListSessions(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(latest) != 1 || latest[0].ID != b.SessionIDs()[2] {
		t.Fatalf("latest = %+v", latest)
	}
}
