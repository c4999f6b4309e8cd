package controllers

import (
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewUpdateAllController,
		NewUpdateCoreController,
		NewUpdatePluginsController,
		NewUpdateThemesController,
		NewUpdateTranslationsController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	allController *UpdateAllController,
	coreController *UpdateCoreController,
	pluginsController *UpdatePluginsController,
	themesController *UpdateThemesController,
	translationsController *UpdateTranslationsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		allController,
		coreController,
		pluginsController,
		themesController,
		translationsController,
	}
}
