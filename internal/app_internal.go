package internal

import "github.com/rios0rios0/wpupdate/internal/domain/entities"

// AppInternal is the assembled application: its settings and every controller.
type AppInternal struct {
	settings    *entities.Settings
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(settings *entities.Settings, controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{settings: settings, controllers: *controllers}
}

// GetSettings returns the shared settings instance the infrastructure reads from.
func (it *AppInternal) GetSettings() *entities.Settings {
	return it.settings
}

// GetControllers returns every update subcommand controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
