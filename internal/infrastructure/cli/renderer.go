package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/doeshing/hey-go/internal/domain"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

// renderPing prints the outcome of --test. Failures go to errOut.
func renderPing(out, errOut io.Writer, endpoint string, result domain.PingResult) {
	fmt.Fprintf(out, "Endpoint: %s\n", endpoint)
	if result.OK {
		fmt.Fprintf(out, "%s  %dms  model=%s\n", okColor.Sprint("OK"), result.ElapsedMS, result.Model)
		return
	}
	fmt.Fprintf(errOut, "%s  %s\n", failColor.Sprint("FAIL"), result.Error)
}

// renderHistory prints entries oldest first, two lines each.
func renderHistory(out io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s  \"%s\"\n", dimColor.Sprint(entry.Timestamp), entry.Query)
		fmt.Fprintf(out, "  → %s\n", entry.Command)
	}
}
