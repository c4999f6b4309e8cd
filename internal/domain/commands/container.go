package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register shared services and command constructors
	constructors := []interface{}{
		NewVersionProbe,
		NewChangeRecorder,
		NewReportRenderer,
		NewUpdateCoreCommand,
		NewUpdatePluginsCommand,
		NewUpdateTranslationsCommand,
		NewUpdateAllCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UpdateCoreCommand) UpdateCore {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UpdatePluginsCommand) UpdatePlugins {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UpdateAllCommand) UpdateAll {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UpdateTranslationsCommand) UpdateTranslations {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
