package repositories

import (
	"context"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

// RegistryRepository abstracts the platform's update-check service and plugin registry.
type RegistryRepository interface {
	// RefreshUpdateCache asks the platform to refresh its cached core update offers.
	RefreshUpdateCache(ctx context.Context) error

	// ReadUpdateCache returns the cached core release offers. An empty slice
	// means the cache is empty.
	ReadUpdateCache(ctx context.Context) ([]entities.CoreRelease, error)

	// ListInstalledExtensions returns every installed plugin.
	ListInstalledExtensions(ctx context.Context) ([]entities.Extension, error)
}
