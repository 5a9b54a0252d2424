package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/watchdog/application"
	"github.com/rios0rios0/watchdog/internal"
)

// injectService builds the DI container and resolves the watch service.
func injectService() *application.WatchService {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var service *application.WatchService
	if err := container.Invoke(func(s *application.WatchService) {
		service = s
	}); err != nil {
		panic(err)
	}

	return service
}
