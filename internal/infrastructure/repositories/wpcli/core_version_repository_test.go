//go:build unit

package wpcli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
	"github.com/rios0rios0/wpupdate/internal/infrastructure/repositories/wpcli"
)

func TestCoreVersionRepositoryReadCoreDetails(t *testing.T) {
	t.Parallel()

	t.Run("should read the version file of the installation", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "wp-includes"), 0o750))
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "wp-includes", "version.php"),
			[]byte("<?php\n$wp_version = '6.4.3';\n$wp_db_version = 56657;\n"),
			0o600,
		))
		settings := entities.NewSettings()
		settings.Path = root

		// when
		details, err := wpcli.NewCoreVersionRepository(settings).ReadCoreDetails(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "6.4.3", details.Version)
		assert.Equal(t, "56657", details.DBVersion)
	})

	t.Run("should explain a missing installation", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.NewSettings()
		settings.Path = t.TempDir()

		// when
		_, err := wpcli.NewCoreVersionRepository(settings).ReadCoreDetails(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--path")
	})

	t.Run("should reject a version file outside the grammar", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "wp-includes"), 0o750))
		require.NoError(t, os.WriteFile(
			filepath.Join(root, "wp-includes", "version.php"),
			[]byte("<?php\n$wp_version = implode('.', [6, 4]);\n"),
			0o600,
		))
		settings := entities.NewSettings()
		settings.Path = root

		// when
		_, err := wpcli.NewCoreVersionRepository(settings).ReadCoreDetails(context.Background())

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
	})
}
