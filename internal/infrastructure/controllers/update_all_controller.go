package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// UpdateAllController handles the "update all" subcommand.
type UpdateAllController struct {
	command commands.UpdateAll
}

// NewUpdateAllController creates a new UpdateAllController.
func NewUpdateAllController(command commands.UpdateAll) *UpdateAllController {
	return &UpdateAllController{command: command}
}

// GetBind returns the Cobra command metadata for the all controller.
func (it *UpdateAllController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "all",
		Short: "Update WordPress core, then plugins",
		Long: `Update WordPress core first, then every plugin, committing each
successful update separately.

Usage: wpupdate update all --ticket=EMS-1234 --date=01-01-2021`,
	}
}

// AddFlags adds the run flags and the translations switch.
func (it *UpdateAllController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
	cmd.Flags().Bool("translations", false, "Also update core translations after the plugins")
}

// Execute runs every update phase.
func (it *UpdateAllController) Execute(cmd *cobra.Command, _ []string) error {
	run, err := parseRunContext(cmd)
	if err != nil {
		return err
	}
	run.Translations, _ = cmd.Flags().GetBool("translations")

	_, err = it.command.Execute(cmd.Context(), run)
	return finishRun(err)
}
