package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewUpgradeCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBuildCommand); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UpgradeCommand) Upgrade {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BuildCommand) Build {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *AnalyzeCommand) Analyze {
		return impl
	}); err != nil {
		return err
	}

	// The pipeline depends on the stage interfaces above.
	if err := container.Provide(NewPipelineCommand); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PipelineCommand) Pipeline {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
