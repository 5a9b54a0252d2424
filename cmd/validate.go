package cmd

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/watchdog/internal/scanner"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the watchdog configuration file",
	Long: `Check that the configuration file is valid, that every referenced
manifest file exists, and list the watchdog markers found in each one.`,
	RunE: runValidate,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("✓ Config file is valid YAML")
	fmt.Printf("✓ Found %d dependencies\n\n", len(cfg.Dependencies))

	sc := scanner.New()
	errorCount := 0

	for _, dep := range cfg.Dependencies {
		fmt.Printf("Checking %s...\n", dep.Name)

		if _, statErr := os.Stat(dep.Source.File); statErr != nil {
			fmt.Printf("  ✗ File not found: %s\n\n", dep.Source.File)
			errorCount++
			continue
		}
		fmt.Printf("  ✓ Source file exists: %s\n", dep.Source.File)

		markers, scanErr := sc.Scan(dep.Source.File)
		if scanErr != nil {
			fmt.Printf("  ✗ Could not read file: %v\n\n", scanErr)
			errorCount++
			continue
		}

		if len(markers) > 0 {
			fmt.Printf("  ✓ Found %d watchdog marker(s)\n", len(markers))
			for _, m := range markers {
				fmt.Printf("    Line %d: %s = %s\n", m.Line, m.Field, m.Current)
			}
		} else {
			fmt.Println("  ⚠ No watchdog markers found")
		}

		fmt.Printf("  ✓ %s repository configured\n\n", dep.Repository.Type)
	}

	if errorCount > 0 {
		return fmt.Errorf("validation failed with %d error(s)", errorCount)
	}

	logger.Info("✓ Validation successful!")
	return nil
}
