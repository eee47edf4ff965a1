package models

import "testing"

func TestSessionZeroValues(t *testing.T) {
	var s Session
	if s.ID != "" || s.Mode != "" || s.DurationSeconds != 0 {
		t.Fatalf("expected empty session, got %+v", s)
	}
	if !s.CompletedAt.IsZero() {
		t.Fatalf("expected zero CompletedAt")
	}
}
