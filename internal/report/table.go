// Package report renders run summaries as console tables and markdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/watchdog/domain"
)

// StatusLabel maps an outcome to its console form.
func StatusLabel(o domain.Outcome) string {
	switch o {
	case domain.OutcomeUpToDate:
		return "✓ Up to date"
	case domain.OutcomeUpdateAvailable:
		return "⚠ Update available"
	case domain.OutcomeUpdated:
		return "✓ Updated"
	case domain.OutcomeWouldUpdate:
		return "→ Would update"
	case domain.OutcomeFailed:
		return "✗ Failed"
	case domain.OutcomeSkipped:
		return "⊘ Skipped"
	case domain.OutcomeUnknown:
		return "? Cannot check"
	default:
		return string(o)
	}
}

// RenderTable writes the five-column summary table. The column schema
// (dependency, file, old version, new version, status) is part of the
// external contract for CI consumers.
func RenderTable(w io.Writer, title string, rows []domain.ReportRow) {
	depW := len("Dependency")
	fileW := len("File")
	currentW := len("Current Version")
	latestW := len("Latest Version")
	statusW := len("Status")

	for _, r := range rows {
		if len(r.Dependency) > depW {
			depW = len(r.Dependency)
		}
		if len(r.File) > fileW {
			fileW = len(r.File)
		}
		if len(r.Current) > currentW {
			currentW = len(r.Current)
		}
		if len(r.Latest) > latestW {
			latestW = len(r.Latest)
		}
	}

	if depW > 30 {
		depW = 30
	}
	if fileW > 40 {
		fileW = 40
	}

	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %-*s\n",
		depW, "Dependency",
		fileW, "File",
		currentW, "Current Version",
		latestW, "Latest Version",
		statusW, "Status")
	fmt.Fprintln(w, strings.Repeat("-", depW+fileW+currentW+latestW+statusW+8))

	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %s\n",
			depW, truncate(r.Dependency, depW),
			fileW, truncate(r.File, fileW),
			currentW, r.Current,
			latestW, r.Latest,
			StatusLabel(r.Result))
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
