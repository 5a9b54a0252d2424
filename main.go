package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/watchdog/application"
	"github.com/rios0rios0/watchdog/cmd"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, application.ErrUpdatesAvailable) {
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'watchdog': %s", err)
	}
}
