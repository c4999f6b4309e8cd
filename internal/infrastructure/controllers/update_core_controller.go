package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// UpdateCoreController handles the "update wordpress" subcommand.
type UpdateCoreController struct {
	command commands.UpdateCore
}

// NewUpdateCoreController creates a new UpdateCoreController.
func NewUpdateCoreController(command commands.UpdateCore) *UpdateCoreController {
	return &UpdateCoreController{command: command}
}

// GetBind returns the Cobra command metadata for the core controller.
func (it *UpdateCoreController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "wordpress",
		Short: "Update WordPress core",
		Long: `Check for a newer WordPress release, update to the most urgent one
and commit the result.

Usage: wpupdate update wordpress --ticket=EMS-1234 --date=01-01-2021`,
	}
}

// AddFlags adds the run flags.
func (it *UpdateCoreController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}

// Execute runs the core update.
func (it *UpdateCoreController) Execute(cmd *cobra.Command, _ []string) error {
	run, err := parseRunContext(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), run)
	return finishRun(err)
}
