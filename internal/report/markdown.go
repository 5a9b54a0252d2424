package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/rios0rios0/watchdog/domain"
)

// summaryMode is the permission set for the generated summary file.
const summaryMode = 0o644

// WriteSummary writes a markdown table to path listing only the rows where
// an update was made or would be made. It reports whether a file was
// written; with no qualifying rows nothing is created.
func WriteSummary(path string, rows []domain.ReportRow) (bool, error) {
	var selected []domain.ReportRow
	for _, r := range rows {
		if r.Result == domain.OutcomeUpdated || r.Result == domain.OutcomeWouldUpdate {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		return false, nil
	}

	var b strings.Builder
	b.WriteString("| Dependency | File | Old Version | New Version | Status |\n")
	b.WriteString("|------------|------|-------------|-------------|--------|\n")
	for _, r := range selected {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Dependency, r.File, r.Current, r.Latest, summaryStatus(r.Result))
	}

	if err := os.WriteFile(path, []byte(b.String()), summaryMode); err != nil {
		return false, fmt.Errorf("failed to write summary %q: %w", path, err)
	}
	return true, nil
}

// summaryStatus is the plain-text status used in the markdown cell,
// without the console glyphs.
func summaryStatus(o domain.Outcome) string {
	if o == domain.OutcomeUpdated {
		return "Updated"
	}
	return "Would update"
}
