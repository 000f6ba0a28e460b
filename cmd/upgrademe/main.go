package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal"
	"github.com/rios0rios0/upgrademe/internal/infrastructure/controllers"
)

func buildRootCommand(pipelineController *controllers.PipelineController) *cobra.Command {
	bind := pipelineController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  cobra.MaximumNArgs(1),
		Run: func(command *cobra.Command, args []string) {
			pipelineController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("backend", "b", "",
		"Suggestion backend: local or hosted (overrides the config file)")
	cmd.PersistentFlags().StringP("model", "m", "",
		"Model name for the selected backend (overrides the config file)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show which dependencies would change without writing, building, or analyzing")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if ac, ok := ctrl.(*controllers.AnalyzeController); ok {
			ac.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	pipelineController, appContext := injectApp()
	cobraRoot := buildRootCommand(pipelineController)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'upgrademe': %s", err)
	}
}
