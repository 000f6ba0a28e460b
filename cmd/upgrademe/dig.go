package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/upgrademe/internal"
	"github.com/rios0rios0/upgrademe/internal/infrastructure/controllers"
)

// injectApp builds the container once and resolves both the root controller
// and the subcommand controllers from it.
func injectApp() (*controllers.PipelineController, *internal.AppInternal) {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var pipelineController *controllers.PipelineController
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(pc *controllers.PipelineController, ai *internal.AppInternal) {
		pipelineController = pc
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return pipelineController, appInternal
}
