//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ExtensionBuilder helps create installed plugins with a fluent interface.
type ExtensionBuilder struct {
	*testkit.BaseBuilder
	name             string
	status           string
	version          string
	updateAvailable  bool
	availableVersion string
}

// NewExtensionBuilder creates a new extension builder with sensible defaults:
// an active plugin at 1.0.0 with 1.1.0 available.
func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		name:             "test-plugin",
		status:           "active",
		version:          "1.0.0",
		updateAvailable:  true,
		availableVersion: "1.1.0",
	}
}

// WithName sets the plugin slug.
func (b *ExtensionBuilder) WithName(name string) *ExtensionBuilder {
	b.name = name
	return b
}

// WithStatus sets the activation status.
func (b *ExtensionBuilder) WithStatus(status string) *ExtensionBuilder {
	b.status = status
	return b
}

// WithVersion sets the installed version.
func (b *ExtensionBuilder) WithVersion(version string) *ExtensionBuilder {
	b.version = version
	return b
}

// WithAvailableVersion marks an update as available at the given version.
func (b *ExtensionBuilder) WithAvailableVersion(version string) *ExtensionBuilder {
	b.updateAvailable = true
	b.availableVersion = version
	return b
}

// WithoutUpdate marks the plugin as up to date.
func (b *ExtensionBuilder) WithoutUpdate() *ExtensionBuilder {
	b.updateAvailable = false
	b.availableVersion = ""
	return b
}

// Build creates the extension (satisfies testkit.Builder interface).
func (b *ExtensionBuilder) Build() interface{} {
	return b.BuildExtension()
}

// BuildExtension creates the extension with a concrete return type.
func (b *ExtensionBuilder) BuildExtension() entities.Extension {
	return entities.Extension{
		Name:             b.name,
		Status:           b.status,
		Version:          b.version,
		UpdateAvailable:  b.updateAvailable,
		AvailableVersion: b.availableVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ExtensionBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-plugin"
	b.status = "active"
	b.version = "1.0.0"
	b.updateAvailable = true
	b.availableVersion = "1.1.0"
	return b
}

// Clone creates a deep copy of the ExtensionBuilder.
func (b *ExtensionBuilder) Clone() testkit.Builder {
	return &ExtensionBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:             b.name,
		status:           b.status,
		version:          b.version,
		updateAvailable:  b.updateAvailable,
		availableVersion: b.availableVersion,
	}
}
