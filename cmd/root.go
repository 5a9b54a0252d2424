package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "watchdog",
	Short: "Version watchdog for annotated manifest files",
	Long: `A CLI tool that scans declarative deployment manifests for version pins
annotated with a '# watchdog this' comment, queries the configured upstream
sources (RSS feeds, OCI registries) for newer releases, and optionally
rewrites the pinned versions in place.

Typical use in CI:
  watchdog check              Fail the build when updates are pending
  watchdog update --apply     Rewrite outdated pins (writes update-summary.md)
  watchdog validate           Sanity-check the configuration file`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the watchdog configuration file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
