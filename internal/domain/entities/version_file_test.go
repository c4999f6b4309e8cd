//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/wpupdate/internal/domain/entities"
)

const stockVersionFile = `<?php
/**
 * WordPress Version
 *
 * Contains version information for the current WordPress release.
 *
 * @package WordPress
 * @since 1.2.0
 */

/**
 * The WordPress version string.
 *
 * @global string $wp_version
 */
$wp_version = '6.4.3';

/**
 * Holds the WordPress DB revision, increments when changes are made to the WordPress DB schema.
 *
 * @global int $wp_db_version
 */
$wp_db_version = 56657;

// TinyMCE version
$tinymce_version = '49110-20201110';

# Localized builds set the locale here
$wp_local_package = "de_DE";

$required_php_version = '7.0.0';
`

func TestParseCoreDetails(t *testing.T) {
	t.Parallel()

	t.Run("should read the known variables of a stock version file", func(t *testing.T) {
		t.Parallel()

		// given / when
		details, err := entities.ParseCoreDetails(stockVersionFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.CoreDetails{
			Version:        "6.4.3",
			DBVersion:      "56657",
			TinyMCEVersion: "49110-20201110",
			LocalPackage:   "de_DE",
		}, details)
	})

	t.Run("should fail when wp_version is not assigned", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php\n$wp_db_version = 56657;\n"

		// when
		_, err := entities.ParseCoreDetails(content)

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
	})
}

func TestParseVersionFile(t *testing.T) {
	t.Parallel()

	t.Run("should accept a closing tag", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php $wp_version = '5.0'; ?>\n<html>"

		// when
		vars, err := entities.ParseVersionFile(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"wp_version": "5.0"}, vars)
	})

	t.Run("should unescape quoted strings", func(t *testing.T) {
		t.Parallel()

		// given
		content := `<?php $name = 'it\'s'; $other = "say \"hi\"";`

		// when
		vars, err := entities.ParseVersionFile(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "it's", vars["name"])
		assert.Equal(t, `say "hi"`, vars["other"])
	})

	t.Run("should reject function calls", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php\n$wp_version = get_version();\n"

		// when
		_, err := entities.ParseVersionFile(content)

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("should reject statements other than assignments", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php\necho 'hello';\n"

		// when
		_, err := entities.ParseVersionFile(content)

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
	})

	t.Run("should reject a missing semicolon", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php $wp_version = '6.4'\n$wp_db_version = 1;"

		// when
		_, err := entities.ParseVersionFile(content)

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
	})

	t.Run("should reject an unterminated string", func(t *testing.T) {
		t.Parallel()

		// given
		content := "<?php $wp_version = '6.4;"

		// when
		_, err := entities.ParseVersionFile(content)

		// then
		require.ErrorIs(t, err, entities.ErrUnparsableVersionFile)
	})

	t.Run("should return no variables for an empty script", func(t *testing.T) {
		t.Parallel()

		// given / when
		vars, err := entities.ParseVersionFile("<?php\n/* nothing here */\n")

		// then
		require.NoError(t, err)
		assert.Empty(t, vars)
	})
}
