package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// SnippetController handles the "snippet" subcommand, which shows the source
// window and prompt an error line would produce without calling a model.
type SnippetController struct{}

// NewSnippetController creates a new SnippetController.
func NewSnippetController() *SnippetController {
	return &SnippetController{}
}

// GetBind returns the Cobra command metadata for the snippet controller.
func (it *SnippetController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "snippet <path> <error-line>",
		Short: "Print the code snippet and prompt built for one error line",
	}
}

// Execute prints the snippet and prompt.
func (it *SnippetController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 2 { //nolint:mnd // path + error line
		logger.Errorf("snippet expects a project path and an error line, got %d arguments", len(args))
		return
	}
	dir, err := projectDir(args[:1])
	if err != nil {
		logger.Errorf("Invalid path: %v", err)
		return
	}

	snippet := entities.ExtractSnippet(dir, args[1])
	if snippet.IsEmpty() {
		logger.Warn("No source lines found for this error line")
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), entities.BuildPrompt(args[1], snippet))
}
