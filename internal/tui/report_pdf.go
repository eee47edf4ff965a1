package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/studytimer/internal/database"
	"github.com/akyairhashvil/studytimer/internal/models"
	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/go-pdf/fpdf"
)

// ExportSessionReport writes the completed-session history as a PDF into dir
// and returns the file path.
func ExportSessionReport(ctx context.Context, store database.SessionRepository, dir string, now time.Time) (string, error) {
	sessions, err := store.ListSessions(ctx, 0)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	summaries, err := store.SummarizeSince(ctx, startOfDay(now))
	if err != nil {
		return "", fmt.Errorf("load summary: %w", err)
	}

	pdf := buildSessionReport(sessions, summaries, now)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", now.Format("2006-01-02_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func buildSessionReport(sessions []models.Session, summaries []models.SessionSummary, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	// Core fonts are cp1252; session text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("Timer Report: %s", now.Format("2006-01-02"))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr("Today: "+FormatSummary(summaries)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr("Completed sessions"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, tr("  - No sessions recorded."))
		pdf.Ln(8)
	}
	total := 0
	for _, s := range sessions {
		total += s.DurationSeconds
		line := fmt.Sprintf("%s  %-8s %s", s.CompletedAt.Local().Format("2006-01-02 15:04"), s.Mode, timer.FormatSeconds(s.DurationSeconds))
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Total: %d sessions, %s", len(sessions), FormatDuration(time.Duration(total)*time.Second))))

	return pdf
}
