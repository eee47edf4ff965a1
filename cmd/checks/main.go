// Command checks runs the timer self-checks and exits non-zero when any fail.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/studytimer/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func main() {
	os.Exit(report(os.Stdout, os.Stderr, timer.RunChecks()))
}

func report(out, errOut io.Writer, results []timer.CheckResult) int {
	for _, r := range results {
		if r.Passed {
			fmt.Fprintln(out, passStyle.Render("✅ "+r.Name))
		} else {
			fmt.Fprintln(out, failStyle.Render("❌ "+r.Name))
		}
	}
	if failed := timer.Failed(results); failed > 0 {
		fmt.Fprintf(errOut, "\n%d check(s) failed.\n", failed)
		return 1
	}
	fmt.Fprintln(out, "\nAll checks passed.")
	return 0
}
