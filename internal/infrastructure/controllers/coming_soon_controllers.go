package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// UpdateThemesController handles "update themes", which is not implemented yet.
type UpdateThemesController struct{}

// NewUpdateThemesController creates a new UpdateThemesController.
func NewUpdateThemesController() *UpdateThemesController {
	return &UpdateThemesController{}
}

func (it *UpdateThemesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{Use: "themes", Short: "Update themes (coming soon)"}
}

func (it *UpdateThemesController) AddFlags(*cobra.Command) {}

func (it *UpdateThemesController) Execute(*cobra.Command, []string) error {
	logger.Info("Theme updates are coming soon")
	return nil
}

// UpdateTranslationsController handles "update translations". The
// translations pass is only reachable through "update all --translations".
type UpdateTranslationsController struct{}

// NewUpdateTranslationsController creates a new UpdateTranslationsController.
func NewUpdateTranslationsController() *UpdateTranslationsController {
	return &UpdateTranslationsController{}
}

func (it *UpdateTranslationsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{Use: "translations", Short: "Update translations (coming soon)"}
}

func (it *UpdateTranslationsController) AddFlags(*cobra.Command) {}

func (it *UpdateTranslationsController) Execute(*cobra.Command, []string) error {
	logger.Info("Translations updates are coming soon")
	return nil
}
