package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewPipelineController); err != nil {
		return err
	}
	if err := container.Provide(NewUpgradeController); err != nil {
		return err
	}
	if err := container.Provide(NewBuildController); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeController); err != nil {
		return err
	}
	if err := container.Provide(NewSnippetController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The pipeline controller backs the root command and is not listed.
func NewControllers(
	upgradeController *UpgradeController,
	buildController *BuildController,
	analyzeController *AnalyzeController,
	snippetController *SnippetController,
) *[]entities.Controller {
	return &[]entities.Controller{
		upgradeController,
		buildController,
		analyzeController,
		snippetController,
	}
}
