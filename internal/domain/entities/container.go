package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Defaults only; the root command loads the config file before any controller runs.
	return container.Provide(NewSettings)
}
