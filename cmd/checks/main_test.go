package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akyairhashvil/studytimer/internal/timer"
)

func TestReportAllPassing(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := report(&out, &errOut, timer.RunChecks()); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "All checks passed.") {
		t.Fatalf("stdout = %q", out.String())
	}
	if strings.Contains(out.String(), "❌") {
		t.Fatalf("unexpected failure mark")
	}
}

func TestReportFailure(t *testing.T) {
	results := []timer.CheckResult{{Name: "good", Passed: true}, {Name: "bad", Passed: false}}
	var out, errOut bytes.Buffer
	if code := report(&out, &errOut, results); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "✅ good") || !strings.Contains(out.String(), "❌ bad") {
		t.Fatalf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "1 check(s) failed.") {
		t.Fatalf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "All checks passed.") {
		t.Fatalf("should not report success")
	}
}
