package wpcli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

const updateAvailable = "available"

// RegistryRepository reads the core update cache and the plugin registry
// through WP-CLI.
type RegistryRepository struct {
	commands repositories.CommandRepository
}

var _ repositories.RegistryRepository = (*RegistryRepository)(nil)

// NewRegistryRepository creates a new RegistryRepository.
func NewRegistryRepository(commands repositories.CommandRepository) *RegistryRepository {
	return &RegistryRepository{commands: commands}
}

// RefreshUpdateCache forces WordPress to query the update API.
func (it *RegistryRepository) RefreshUpdateCache(ctx context.Context) error {
	_, err := it.commands.RunCommand(ctx, "eval", "wp_version_check( array(), true );")
	return err
}

// ReadUpdateCache reads the update_core site transient.
func (it *RegistryRepository) ReadUpdateCache(ctx context.Context) ([]entities.CoreRelease, error) {
	raw, err := it.commands.RunCommand(ctx, "transient", "get", "update_core", "--network", "--format=json")
	if err != nil {
		return nil, err
	}
	return ParseUpdateCache(raw)
}

// ListInstalledExtensions runs `plugin list`.
func (it *RegistryRepository) ListInstalledExtensions(ctx context.Context) ([]entities.Extension, error) {
	raw, err := it.commands.RunCommand(ctx, "plugin", "list", "--format=json")
	if err != nil {
		return nil, err
	}
	return ParsePluginList(raw)
}

type updateCacheJSON struct {
	Updates []struct {
		Version string `json:"version"`
	} `json:"updates"`
}

// ParseUpdateCache decodes the update_core transient. A missing or false
// transient is an empty cache.
func ParseUpdateCache(raw json.RawMessage) ([]entities.CoreRelease, error) {
	if len(raw) == 0 || string(raw) == "false" || string(raw) == "null" {
		return nil, nil
	}

	var cache updateCacheJSON
	if err := json.Unmarshal(raw, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse update_core transient: %w", err)
	}

	releases := make([]entities.CoreRelease, 0, len(cache.Updates))
	for _, offer := range cache.Updates {
		if offer.Version == "" {
			continue
		}
		releases = append(releases, entities.CoreRelease{Version: offer.Version})
	}
	return releases, nil
}

type pluginJSON struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	Update        string `json:"update"`
	Version       string `json:"version"`
	UpdateVersion string `json:"update_version"`
}

// ParsePluginList decodes `plugin list --format=json`.
func ParsePluginList(raw json.RawMessage) ([]entities.Extension, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var plugins []pluginJSON
	if err := json.Unmarshal(raw, &plugins); err != nil {
		return nil, fmt.Errorf("failed to parse plugin list: %w", err)
	}

	extensions := make([]entities.Extension, 0, len(plugins))
	for _, p := range plugins {
		extensions = append(extensions, entities.Extension{
			Name:             p.Name,
			Status:           p.Status,
			Version:          p.Version,
			UpdateAvailable:  p.Update == updateAvailable,
			AvailableVersion: p.UpdateVersion,
		})
	}
	return extensions, nil
}
