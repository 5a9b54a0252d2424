// Package internal wires the application components into the DI container.
package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/watchdog/application"
	"github.com/rios0rios0/watchdog/infrastructure/fetcher"
	"github.com/rios0rios0/watchdog/infrastructure/vcs"
	"github.com/rios0rios0/watchdog/internal/planner"
	"github.com/rios0rios0/watchdog/internal/rewriter"
	"github.com/rios0rios0/watchdog/internal/scanner"
)

// RegisterProviders registers all constructors with the DIG container,
// bottom-up: infrastructure, then the pipeline components, then the service.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		fetcher.NewHTTPClient,
		fetcher.NewDefaultRegistry,
		scanner.New,
		planner.New,
		rewriter.New,
		vcs.NewCommitter,
		application.NewWatchService,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}
