package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// UpdatePluginsController handles the "update plugins" subcommand.
type UpdatePluginsController struct {
	command commands.UpdatePlugins
}

// NewUpdatePluginsController creates a new UpdatePluginsController.
func NewUpdatePluginsController(command commands.UpdatePlugins) *UpdatePluginsController {
	return &UpdatePluginsController{command: command}
}

// GetBind returns the Cobra command metadata for the plugins controller.
func (it *UpdatePluginsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plugins",
		Short: "Update installed plugins",
		Long: `Update every plugin with an available update, one commit per plugin.
Premium plugins (Advanced Custom Fields Pro, Gravity Forms and its add-ons)
are updated with their license keys (ACFPRO_KEY, GF_KEY).

Usage: wpupdate update plugins --ticket=EMS-1234 --date=01-01-2021`,
	}
}

// AddFlags adds the run flags.
func (it *UpdatePluginsController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}

// Execute runs the plugin updates.
func (it *UpdatePluginsController) Execute(cmd *cobra.Command, _ []string) error {
	run, err := parseRunContext(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), run)
	return finishRun(err)
}
