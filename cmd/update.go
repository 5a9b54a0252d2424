package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/watchdog/domain"
	"github.com/rios0rios0/watchdog/internal/report"
)

// summaryFile is the markdown summary consumed by CI (e.g. a GitHub Actions
// job summary or PR body).
const summaryFile = "update-summary.md"

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	updateDryRun bool
	updateApply  bool
	updateCommit bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update annotated versions to their latest available releases",
	Long: `Rewrite version pins on lines annotated with '# watchdog this' to the
latest version published by the configured upstream source.

Requires --apply to actually modify files; --dry-run previews the changes.
When at least one pin is (or would be) rewritten, a markdown summary is
written to ` + summaryFile + `.`,
	RunE: runUpdate,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	updateCmd.Flags().BoolVarP(&updateDryRun, "dry-run", "n", false,
		"Show what would be updated without making any changes")
	updateCmd.Flags().BoolVarP(&updateApply, "apply", "a", false,
		"Apply the updates (required to actually modify files)")
	updateCmd.Flags().BoolVar(&updateCommit, "commit", false,
		"Commit the rewritten manifests in the enclosing Git repository (with --apply)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if updateDryRun && updateApply {
		return errors.New("cannot use both --dry-run and --apply together")
	}
	if !updateDryRun && !updateApply {
		return errors.New(
			"no action specified: use --dry-run to preview or --apply to update files",
		)
	}

	if updateApply {
		logger.Warn("APPLY MODE - Files will be modified")
	} else {
		logger.Info("DRY RUN MODE - No files will be modified")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service := injectService()
	runReport, err := service.Update(ctx, cfg, domain.UpdateOptions{
		DryRun:  updateDryRun,
		Apply:   updateApply,
		Commit:  updateCommit,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	report.RenderTable(os.Stdout, "Update Results", runReport.Rows)
	fmt.Println()

	written, err := report.WriteSummary(summaryFile, runReport.Rows)
	if err != nil {
		return err
	}
	if written {
		logger.Infof("Markdown summary written to %s", summaryFile)
	}

	switch {
	case runReport.UpdatesMade > 0 && !updateApply:
		logger.Infof("Would update %d version(s) (dry-run mode)", runReport.UpdatesMade)
		logger.Info("Run with --apply to actually modify files")
	case runReport.UpdatesMade > 0:
		logger.Infof("Successfully updated %d version(s)!", runReport.UpdatesMade)
	default:
		logger.Info("No updates needed - all versions are current!")
	}

	if runReport.Skipped > 0 {
		logger.Debugf("Skipped %d item(s)", runReport.Skipped)
	}

	return nil
}
