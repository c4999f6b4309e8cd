//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/wpupdate/internal/domain/commands"
	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/wpupdate/test/infrastructure/repositorydoubles"
)

func TestVersionProbeExtensionCurrentVersion(t *testing.T) {
	t.Parallel()

	t.Run("should return the version of an exact match", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{Plugins: []entities.Extension{
			entitybuilders.NewExtensionBuilder().WithName("akismet").WithVersion("5.3").BuildExtension(),
			entitybuilders.NewExtensionBuilder().WithName("akismet-extra").WithVersion("1.0").BuildExtension(),
		}}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		version, ok := probe.ExtensionCurrentVersion(context.Background(), "akismet")

		// then
		assert.True(t, ok)
		assert.Equal(t, "5.3", version)
	})

	t.Run("should report not found when the name is ambiguous", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewExtensionBuilder().WithName("akismet")
		wp := &doubles.FakeWordPress{Plugins: []entities.Extension{
			builder.WithVersion("5.2").BuildExtension(),
			builder.WithVersion("5.3").BuildExtension(),
		}}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		_, ok := probe.ExtensionCurrentVersion(context.Background(), "akismet")

		// then
		assert.False(t, ok)
	})

	t.Run("should report not found when the listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{ListErr: errors.New("wp-cli crashed")}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		_, ok := probe.ExtensionCurrentVersion(context.Background(), "akismet")

		// then
		assert.False(t, ok)
	})
}

func TestVersionProbeInstalledVersion(t *testing.T) {
	t.Parallel()

	t.Run("should read the core version for the core component", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{CoreVersion: "6.4.3"}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		version, ok := probe.InstalledVersion(context.Background(), entities.CoreComponentName)

		// then
		assert.True(t, ok)
		assert.Equal(t, "6.4.3", version)
	})

	t.Run("should report not found when the version file is unreadable", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{CoreErr: entities.ErrUnparsableVersionFile}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		_, ok := probe.InstalledVersion(context.Background(), entities.CoreComponentName)

		// then
		assert.False(t, ok)
	})
}

func TestVersionProbeLatestCoreVersion(t *testing.T) {
	t.Parallel()

	t.Run("should classify the refreshed releases", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{CoreReleases: []entities.CoreRelease{{Version: "6.4.3"}, {Version: "6.5"}}}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		version, ok := probe.LatestCoreVersion(context.Background(), "6.4.2")

		// then
		assert.True(t, ok)
		assert.Equal(t, "6.5", version)
		assert.Equal(t, 1, wp.RefreshCnt)
	})

	t.Run("should fail soft when the refresh fails", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{
			RefreshErr:   errors.New("offline"),
			CoreReleases: []entities.CoreRelease{{Version: "6.5"}},
		}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		_, ok := probe.LatestCoreVersion(context.Background(), "6.4.2")

		// then
		assert.False(t, ok)
	})
}

func TestVersionProbeSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should capture core and extensions together", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{
			CoreVersion:  "6.4.2",
			CoreReleases: []entities.CoreRelease{{Version: "6.4.3"}},
			Plugins:      []entities.Extension{entitybuilders.NewExtensionBuilder().BuildExtension()},
		}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		snapshot := probe.Snapshot(context.Background())

		// then
		assert.Equal(t, "6.4.2", snapshot.CoreVersion)
		assert.Len(t, snapshot.CoreReleases, 1)
		require.Len(t, snapshot.Extensions, 1)
		assert.Equal(t, "test-plugin", snapshot.Extensions[0].Name)
	})

	t.Run("should still list extensions when the core cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		wp := &doubles.FakeWordPress{
			CoreErr: errors.New("no version.php"),
			Plugins: []entities.Extension{entitybuilders.NewExtensionBuilder().BuildExtension()},
		}
		probe := commands.NewVersionProbe(wp, wp)

		// when
		snapshot := probe.Snapshot(context.Background())

		// then
		assert.Empty(t, snapshot.CoreVersion)
		assert.Len(t, snapshot.Extensions, 1)
	})
}
