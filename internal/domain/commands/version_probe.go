package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// VersionProbe is the query layer over the registry and the core version file.
// Absent data (empty caches, ambiguous lookups) is reported as "not found",
// never as a failure of the run.
type VersionProbe struct {
	registry repositories.RegistryRepository
	core     repositories.CoreVersionRepository
}

// NewVersionProbe creates a new VersionProbe.
func NewVersionProbe(
	registry repositories.RegistryRepository,
	core repositories.CoreVersionRepository,
) *VersionProbe {
	return &VersionProbe{registry: registry, core: core}
}

// CurrentCoreVersion reads the installed core version.
func (it *VersionProbe) CurrentCoreVersion(ctx context.Context) (string, error) {
	details, err := it.core.ReadCoreDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read core version: %w", err)
	}
	return details.Version, nil
}

// CoreReleases refreshes the update cache and returns the offered releases.
// A failed refresh or an empty cache yields no releases.
func (it *VersionProbe) CoreReleases(ctx context.Context) []entities.CoreRelease {
	if err := it.registry.RefreshUpdateCache(ctx); err != nil {
		logger.Warnf("Failed to refresh the core update cache: %v", err)
		return nil
	}

	releases, err := it.registry.ReadUpdateCache(ctx)
	if err != nil {
		logger.Warnf("Failed to read the core update cache: %v", err)
		return nil
	}
	return releases
}

// LatestCoreVersion returns the most urgent core release newer than installed.
func (it *VersionProbe) LatestCoreVersion(ctx context.Context, installed string) (string, bool) {
	return entities.ClassifyCoreUpdate(installed, it.CoreReleases(ctx))
}

// InstalledExtensions lists every installed extension.
func (it *VersionProbe) InstalledExtensions(ctx context.Context) ([]entities.Extension, error) {
	extensions, err := it.registry.ListInstalledExtensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list installed plugins: %w", err)
	}
	return extensions, nil
}

// ExtensionCurrentVersion looks up one extension by exact name. Zero or
// several matches are both reported as not found.
func (it *VersionProbe) ExtensionCurrentVersion(ctx context.Context, name string) (string, bool) {
	extensions, err := it.InstalledExtensions(ctx)
	if err != nil {
		logger.Warnf("%v", err)
		return "", false
	}

	var matches []entities.Extension
	for _, ext := range extensions {
		if ext.Name == name {
			matches = append(matches, ext)
		}
	}
	if len(matches) != 1 {
		return "", false
	}
	return matches[0].Version, true
}

// InstalledVersion re-probes any component: the core name reads the version
// file, everything else is looked up among the extensions.
func (it *VersionProbe) InstalledVersion(ctx context.Context, name string) (string, bool) {
	if name == entities.CoreComponentName {
		version, err := it.CurrentCoreVersion(ctx)
		if err != nil {
			logger.Warnf("%v", err)
			return "", false
		}
		return version, true
	}
	return it.ExtensionCurrentVersion(ctx, name)
}

// ProbeCore captures the core half of a snapshot.
func (it *VersionProbe) ProbeCore(ctx context.Context) (entities.VersionSnapshot, error) {
	version, err := it.CurrentCoreVersion(ctx)
	if err != nil {
		return entities.VersionSnapshot{}, err
	}
	return entities.VersionSnapshot{
		CoreVersion:  version,
		CoreReleases: it.CoreReleases(ctx),
	}, nil
}

// ProbeExtensions captures the extension half of a snapshot. A failed
// listing is logged and yields no extensions.
func (it *VersionProbe) ProbeExtensions(ctx context.Context) entities.VersionSnapshot {
	extensions, err := it.InstalledExtensions(ctx)
	if err != nil {
		logger.Warnf("%v", err)
	}
	return entities.VersionSnapshot{Extensions: extensions}
}

// Snapshot captures core and extensions together.
func (it *VersionProbe) Snapshot(ctx context.Context) entities.VersionSnapshot {
	snapshot, err := it.ProbeCore(ctx)
	if err != nil {
		logger.Errorf("Could not determine the installed WordPress version: %v", err)
	}
	snapshot.Extensions = it.ProbeExtensions(ctx).Extensions
	return snapshot
}
