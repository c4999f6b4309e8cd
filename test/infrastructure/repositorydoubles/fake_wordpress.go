//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/domain/repositories"
)

// FakeWordPress is an in-memory WordPress installation. It implements the
// registry, command and core version repositories so that commands see
// their own updates when they re-probe.
type FakeWordPress struct {
	// --- state ---
	CoreVersion  string
	CoreReleases []entities.CoreRelease
	Plugins      []entities.Extension

	// --- behaviour ---
	// UpdateResults overrides the version a plugin ends up at after an update.
	// Without an entry the plugin moves to its AvailableVersion.
	UpdateResults map[string]string
	// CommandErrs fails commands whose joined leading words match a key,
	// e.g. "plugin update akismet" or "core update".
	CommandErrs map[string]error
	RefreshErr  error
	ListErr     error
	CoreErr     error

	// --- recorded ---
	Commands   [][]string
	ListCalls  int
	RefreshCnt int
}

var (
	_ repositories.RegistryRepository    = (*FakeWordPress)(nil)
	_ repositories.CommandRepository     = (*FakeWordPress)(nil)
	_ repositories.CoreVersionRepository = (*FakeWordPress)(nil)
)

func (f *FakeWordPress) RefreshUpdateCache(_ context.Context) error {
	f.RefreshCnt++
	return f.RefreshErr
}

func (f *FakeWordPress) ReadUpdateCache(_ context.Context) ([]entities.CoreRelease, error) {
	return f.CoreReleases, nil
}

func (f *FakeWordPress) ListInstalledExtensions(_ context.Context) ([]entities.Extension, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	result := make([]entities.Extension, len(f.Plugins))
	copy(result, f.Plugins)
	return result, nil
}

func (f *FakeWordPress) ReadCoreDetails(_ context.Context) (entities.CoreDetails, error) {
	if f.CoreErr != nil {
		return entities.CoreDetails{}, f.CoreErr
	}
	return entities.CoreDetails{Version: f.CoreVersion}, nil
}

func (f *FakeWordPress) RunCommand(_ context.Context, args ...string) (json.RawMessage, error) {
	f.Commands = append(f.Commands, args)
	for prefix, err := range f.CommandErrs {
		if strings.HasPrefix(strings.Join(args, " "), prefix) {
			return nil, err
		}
	}

	switch {
	case len(args) >= 3 && args[0] == "plugin" && args[1] == "update":
		f.applyPluginUpdate(args[2])
	case len(args) >= 3 && args[0] == "plugin" && args[1] == "install" &&
		strings.Contains(args[2], "advancedcustomfields"):
		f.applyPluginUpdate("advanced-custom-fields-pro")
	case len(args) >= 2 && args[0] == "gf" && args[1] == "update":
		slug := "gravityforms"
		if len(args) >= 3 && !strings.HasPrefix(args[2], "--") {
			slug = args[2]
		}
		f.applyPluginUpdate(slug)
	case len(args) >= 3 && args[0] == "core" && args[1] == "update":
		f.CoreVersion = strings.TrimPrefix(args[2], "--version=")
	}
	return nil, nil
}

// CommandLines returns the recorded commands joined by spaces.
func (f *FakeWordPress) CommandLines() []string {
	lines := make([]string, 0, len(f.Commands))
	for _, args := range f.Commands {
		lines = append(lines, strings.Join(args, " "))
	}
	return lines
}

func (f *FakeWordPress) applyPluginUpdate(name string) {
	for i := range f.Plugins {
		if f.Plugins[i].Name != name {
			continue
		}
		if version, ok := f.UpdateResults[name]; ok {
			f.Plugins[i].Version = version
		} else if f.Plugins[i].AvailableVersion != "" {
			f.Plugins[i].Version = f.Plugins[i].AvailableVersion
		}
		f.Plugins[i].UpdateAvailable = false
	}
}
