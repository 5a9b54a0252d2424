package cmd

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/watchdog/application"
	"github.com/rios0rios0/watchdog/config"
	"github.com/rios0rios0/watchdog/internal/report"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkDryRun bool

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check for new versions based on the watchdog configuration",
	Long: `Read the configuration file, find manifest lines annotated with
'# watchdog this', and check the configured upstream sources for newer
versions.

Exits with a non-zero status when at least one update is available, so the
command can gate a CI pipeline.`,
	RunE: runCheck,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	checkCmd.Flags().BoolVarP(&checkDryRun, "dry-run", "n", false,
		"Show what would be checked without making any changes")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if checkDryRun {
		logger.Info("DRY RUN MODE - No changes will be made")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service := injectService()
	runReport, err := service.Check(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	report.RenderTable(os.Stdout, "Version Check Results", runReport.Rows)
	fmt.Println()

	if runReport.UpdatesAvailable > 0 {
		logger.Warnf("Found %d update(s) available!", runReport.UpdatesAvailable)
		return application.ErrUpdatesAvailable
	}

	logger.Info("All dependencies are up to date!")
	return nil
}

// loadConfig resolves the configuration path (flag or auto-detection) and
// loads it. Shared by all subcommands.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create watchdog.yaml",
				err,
			)
		}
	}

	logger.Infof("Loading configuration from %s...", path)
	return config.Load(path)
}
